package exitcode

import (
	"errors"
	"os"
	"strings"

	apperrors "github.com/harborbank/teller/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// NetworkError indicates a network connectivity issue
	NetworkError = 4

	// ConfigError indicates a configuration problem
	ConfigError = 5

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors are classified by their error code; everything else falls
// back to message inspection, which covers cobra usage errors and wrapped
// transport failures.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var coded *apperrors.TellerError
	if errors.As(err, &coded) {
		return codeFor(coded.Code)
	}

	errMsg := strings.ToLower(err.Error())

	// Authentication errors
	if strings.Contains(errMsg, "authentication") || strings.Contains(errMsg, "unauthorized") {
		return AuthError
	}

	// Network errors
	if strings.Contains(errMsg, "unreachable") || strings.Contains(errMsg, "connection refused") {
		return NetworkError
	}
	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}

	// Configuration errors
	if strings.Contains(errMsg, "config file") {
		return ConfigError
	}

	// Usage errors
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "unknown flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "invalid argument") || strings.Contains(errMsg, "accepts") {
		return UsageError
	}

	return GeneralError
}

// codeFor maps an error code onto an exit code by its category.
func codeFor(code apperrors.ErrorCode) int {
	if code == apperrors.ErrCodeAPIUnreachable {
		return NetworkError
	}
	if code == apperrors.ErrCodeAPIAuthFailed {
		return AuthError
	}

	switch {
	case strings.HasPrefix(string(code), "SESSION-"):
		return AuthError
	case strings.HasPrefix(string(code), "CONFIG-"):
		return ConfigError
	case strings.HasPrefix(string(code), "ROUTE-"):
		return UsageError
	default:
		return GeneralError
	}
}
