package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSessionCorrupt, "test error message")

	if err.Code != ErrCodeSessionCorrupt {
		t.Errorf("expected code %s, got %s", ErrCodeSessionCorrupt, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeStorageReadFailed, "failed to read storage", cause)

	if err.Code != ErrCodeStorageReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeStorageReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *TellerError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeConfigInvalid, "invalid config"),
			wantCode: "CONFIG-002",
			wantMsg:  "invalid config",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeStorageReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "STORAGE-001",
			wantMsg:  "read failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			if !strings.Contains(out, tt.wantCode) {
				t.Errorf("expected output to contain code %s, got %s", tt.wantCode, out)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("expected output to contain message %s, got %s", tt.wantMsg, out)
			}
		})
	}
}

func TestSuggestionsAndDocs(t *testing.T) {
	err := New(ErrCodeAPIAuthFailed, "authentication failed").
		WithSuggestion("check your credentials").
		WithSuggestions("run teller auth login", "verify the backend is up").
		WithDocs("https://github.com/harborbank/teller#authentication")

	out := err.Error()

	if len(err.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(err.Suggestions))
	}
	if !strings.Contains(out, "Suggestions:") {
		t.Errorf("expected suggestions section in output, got %s", out)
	}
	if !strings.Contains(out, "Documentation: https://github.com/harborbank/teller#authentication") {
		t.Errorf("expected documentation link in output, got %s", out)
	}
}

func TestCommonConstructors(t *testing.T) {
	storageErr := NewStorageReadError("/tmp/session.json", fmt.Errorf("no such file"))
	if storageErr.Code != ErrCodeStorageReadFailed {
		t.Errorf("expected %s, got %s", ErrCodeStorageReadFailed, storageErr.Code)
	}

	authErr := NewAPIAuthError("invalid credentials")
	if authErr.Code != ErrCodeAPIAuthFailed {
		t.Errorf("expected %s, got %s", ErrCodeAPIAuthFailed, authErr.Code)
	}
	if len(authErr.Suggestions) == 0 {
		t.Errorf("expected suggestions on auth error")
	}

	routeErr := NewRouteUnknownError("customer-vault")
	if !strings.Contains(routeErr.Error(), "customer-vault") {
		t.Errorf("expected route name in message, got %s", routeErr.Error())
	}
}
