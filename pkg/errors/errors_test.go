package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeApplication, "design name already in use")

	if err.Code != ErrCodeApplication {
		t.Errorf("Expected code %s, got %s", ErrCodeApplication, err.Code)
	}
	if err.Message != "design name already in use" {
		t.Errorf("Expected message preserved, got %q", err.Message)
	}
	if err.Err != nil {
		t.Error("Expected no wrapped error")
	}
}

func TestWrap_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(inner, ErrCodeTransport, "Request failed")

	if !errors.Is(err, inner) {
		t.Error("Expected errors.Is to find the wrapped error")
	}
	if err.Unwrap() != inner {
		t.Error("Expected Unwrap to return the wrapped error")
	}
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "Without wrapped error",
			err:      New(ErrCodeNotFound, "Design not found"),
			expected: "NOT_FOUND: Design not found",
		},
		{
			name:     "With wrapped error",
			err:      Wrap(errors.New("eof"), ErrCodeDecode, "Bad body"),
			expected: "DECODE_ERROR: Bad body (eof)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTaxonomy_Distinguishable(t *testing.T) {
	transport := Transport(http.StatusBadGateway, "upstream unavailable")
	application := Application("price must be positive")
	decode := Decode(errors.New("unexpected end of JSON input"))

	if !IsTransport(transport) || IsTransport(application) || IsTransport(decode) {
		t.Error("IsTransport misclassified an error")
	}
	if !IsApplication(application) || IsApplication(transport) || IsApplication(decode) {
		t.Error("IsApplication misclassified an error")
	}
	if !IsDecode(decode) || IsDecode(transport) || IsDecode(application) {
		t.Error("IsDecode misclassified an error")
	}
}

func TestTransport_CarriesStatusCode(t *testing.T) {
	err := Transport(http.StatusServiceUnavailable, "tunnel down")

	if got := StatusCodeOf(err); got != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", got)
	}
}

func TestTransport_ZeroStatus(t *testing.T) {
	err := Transport(0, "dial tcp: connection refused")

	// Network-level failures keep the default status, not 0.
	if got := StatusCodeOf(err); got != http.StatusInternalServerError {
		t.Errorf("Expected default status 500, got %d", got)
	}
	if !IsTransport(err) {
		t.Error("Expected a transport error")
	}
}

func TestApplication_PreservesServerMessage(t *testing.T) {
	msg := "Design with this name already exists"
	err := Application(msg)

	if err.Message != msg {
		t.Errorf("Expected server message verbatim, got %q", err.Message)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := New(ErrCodeValidation, "bad input")
	wrapped := fmt.Errorf("while creating design: %w", appErr)

	if got, ok := IsAppError(wrapped); !ok || got != appErr {
		t.Error("Expected IsAppError to unwrap through fmt.Errorf")
	}

	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Error("Expected plain error to not be an AppError")
	}
}

func TestWithStatusCode(t *testing.T) {
	err := New(ErrCodeApplication, "not here").WithStatusCode(http.StatusNotFound)

	if err.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", err.StatusCode)
	}
}

func TestStatusCodeOf_NonAppError(t *testing.T) {
	if got := StatusCodeOf(errors.New("plain")); got != 0 {
		t.Errorf("Expected 0 for plain error, got %d", got)
	}
}
