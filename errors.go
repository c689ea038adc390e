package docref

import (
	"errors"
	"fmt"
)

// Application error codes. These map core failure modes onto a small,
// stable vocabulary that callers can branch on without string matching.
const (
	EINTERNAL      = "internal"      // unexpected failure (recovered panic, programmer error)
	EINVALID       = "invalid"       // malformed input (unparseable HTML, bad URL)
	ENOTFOUND      = "not_found"     // a selector or structural anchor never matched
	EUNPROCESSABLE = "unprocessable" // page structure did not have the expected shape
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docref error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
