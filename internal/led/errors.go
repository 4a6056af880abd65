package led

import "fmt"

// Error codes for LED operations.
const (
	ErrCodeDeviceUnavailable = "DEVICE_UNAVAILABLE"
	ErrCodePermissionDenied  = "PERMISSION_DENIED"
	ErrCodeInvalidValue      = "INVALID_VALUE"
	ErrCodeInvalidFormat     = "INVALID_FORMAT"
)

// Error represents an LED-specific error with a code.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code so callers can test against the sentinel values
// below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel values for errors.Is checks.
var (
	ErrDeviceUnavailable = &Error{Code: ErrCodeDeviceUnavailable, Message: "led control file unavailable"}
	ErrPermissionDenied  = &Error{Code: ErrCodePermissionDenied, Message: "permission denied"}
	ErrInvalidValue      = &Error{Code: ErrCodeInvalidValue, Message: "invalid value"}
	ErrInvalidFormat     = &Error{Code: ErrCodeInvalidFormat, Message: "invalid device output"}
)

func newError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
