package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionCorrupt     ErrorCode = "SESSION-001"
	ErrCodeSessionWriteFailed ErrorCode = "SESSION-002"
	ErrCodeSessionNotFound    ErrorCode = "SESSION-003"

	// Route errors (ROUTE-001 to ROUTE-099)
	ErrCodeRouteUnknown ErrorCode = "ROUTE-001"
	ErrCodeRouteDenied  ErrorCode = "ROUTE-002"

	// Storage errors (STORAGE-001 to STORAGE-099)
	ErrCodeStorageReadFailed  ErrorCode = "STORAGE-001"
	ErrCodeStorageWriteFailed ErrorCode = "STORAGE-002"
	ErrCodeStorageCorrupt     ErrorCode = "STORAGE-003"

	// API errors (API-001 to API-099)
	ErrCodeAPIUnreachable   ErrorCode = "API-001"
	ErrCodeAPIAuthFailed    ErrorCode = "API-002"
	ErrCodeAPIBadResponse   ErrorCode = "API-003"
	ErrCodeAPIRequestFailed ErrorCode = "API-004"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound  ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid   ErrorCode = "CONFIG-002"
	ErrCodeConfigUnmarshal ErrorCode = "CONFIG-003"
)

// TellerError represents an enhanced error with code, suggestions, and documentation
type TellerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *TellerError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *TellerError) Unwrap() error {
	return e.Cause
}

// New creates a new TellerError
func New(code ErrorCode, message string) *TellerError {
	return &TellerError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new TellerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *TellerError {
	return &TellerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *TellerError) WithSuggestion(suggestion string) *TellerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *TellerError) WithSuggestions(suggestions ...string) *TellerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *TellerError) WithDocs(url string) *TellerError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewStorageReadError creates a storage read error
func NewStorageReadError(path string, cause error) *TellerError {
	return Wrap(ErrCodeStorageReadFailed, fmt.Sprintf("failed to read session storage: %s", path), cause).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify you have read permissions on the teller directory")
}

// NewStorageWriteError creates a storage write error
func NewStorageWriteError(path string, cause error) *TellerError {
	return Wrap(ErrCodeStorageWriteFailed, fmt.Sprintf("failed to write session storage: %s", path), cause).
		WithSuggestion("Verify you have write permissions on the teller directory").
		WithSuggestion("Check available disk space")
}

// NewAPIAuthError creates an authentication failure error
func NewAPIAuthError(detail string) *TellerError {
	return New(ErrCodeAPIAuthFailed, fmt.Sprintf("authentication failed: %s", detail)).
		WithSuggestion("Check your email and password").
		WithSuggestion("Run 'teller auth login' to sign in again")
}

// NewAPIUnreachableError creates a backend connectivity error
func NewAPIUnreachableError(baseURL string, cause error) *TellerError {
	return Wrap(ErrCodeAPIUnreachable, fmt.Sprintf("bank API is unreachable: %s", baseURL), cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the api_base_url setting with 'teller config show'")
}

// NewConfigUnmarshalError creates a config parse error
func NewConfigUnmarshalError(path string, cause error) *TellerError {
	return Wrap(ErrCodeConfigUnmarshal, fmt.Sprintf("failed to parse config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the config file").
		WithSuggestion("Delete the file to fall back to defaults")
}

// NewRouteUnknownError creates an unknown route error
func NewRouteUnknownError(route string) *TellerError {
	return New(ErrCodeRouteUnknown, fmt.Sprintf("unknown route: %s", route)).
		WithSuggestion("Run 'teller routes' to list declared routes")
}
