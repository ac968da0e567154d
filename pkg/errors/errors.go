package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code for application errors
type ErrorCode string

// Error codes for the client-side failure taxonomy
const (
	// Outcome of a single request
	ErrCodeTransport   ErrorCode = "TRANSPORT_ERROR"   // non-2xx HTTP status or network failure
	ErrCodeApplication ErrorCode = "APPLICATION_ERROR" // envelope success=false
	ErrCodeDecode      ErrorCode = "DECODE_ERROR"      // malformed response body

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"

	// Session errors
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeOTPRejected  ErrorCode = "OTP_REJECTED"
)

// AppError represents a custom application error
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getDefaultStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new AppError wrapping an existing error
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getDefaultStatusCode(code),
		Err:        err,
	}
}

// Wrapf creates a new AppError wrapping an existing error with formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetails adds details to an existing AppError
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithStatusCode overrides the default status code
func (e *AppError) WithStatusCode(statusCode int) *AppError {
	e.StatusCode = statusCode
	return e
}

// getDefaultStatusCode returns the default HTTP status code for an error code
func getDefaultStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidation, ErrCodeBadRequest, ErrCodeDecode:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeMissingToken, ErrCodeOTPRejected:
		return http.StatusUnauthorized
	case ErrCodeTransport, ErrCodeApplication, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Transport creates a TRANSPORT_ERROR carrying the HTTP status the server
// answered with. statusCode 0 means the request never reached the server.
func Transport(statusCode int, message string) *AppError {
	e := New(ErrCodeTransport, message)
	if statusCode > 0 {
		e.StatusCode = statusCode
	}
	return e
}

// Application creates an APPLICATION_ERROR preserving the server message
// verbatim. Callers branch on this kind to show the server's own wording.
func Application(message string) *AppError {
	return New(ErrCodeApplication, message)
}

// Decode creates a DECODE_ERROR wrapping the unmarshal failure.
func Decode(err error) *AppError {
	return Wrap(err, ErrCodeDecode, "Failed to decode response body")
}

// Predefined common errors
var (
	ErrInternal     = New(ErrCodeInternal, "Internal error")
	ErrNotFound     = New(ErrCodeNotFound, "Resource not found")
	ErrUnauthorized = New(ErrCodeUnauthorized, "Unauthorized access")
	ErrValidation   = New(ErrCodeValidation, "Validation failed")
	ErrMissingToken = New(ErrCodeMissingToken, "Authentication token required")
)

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// hasCode reports whether err is an AppError with the given code.
func hasCode(err error, code ErrorCode) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsTransport reports whether err is a transport-level failure
// (non-2xx status or the request never completed).
func IsTransport(err error) bool {
	return hasCode(err, ErrCodeTransport)
}

// IsApplication reports whether err is an application-level failure
// (the server answered 2xx but the envelope said success=false).
func IsApplication(err error) bool {
	return hasCode(err, ErrCodeApplication)
}

// IsDecode reports whether err is a response decoding failure.
func IsDecode(err error) bool {
	return hasCode(err, ErrCodeDecode)
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// StatusCodeOf returns the HTTP status attached to err, or 0 when err is
// not an AppError.
func StatusCodeOf(err error) int {
	if appErr, ok := IsAppError(err); ok {
		return appErr.StatusCode
	}
	return 0
}
