package ledger

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	ECONFLICT = "conflict"

	// Extraction failures. All of them abort the whole document.
	EACQUISITION = "acquisition"
	ESTRUCTURE   = "structure"
	EFORMAT      = "format"
	EFIELDCOUNT  = "field_count"
	EFIELDPARSE  = "field_parse"
	ENUMBER      = "number_format"
	EEMPTY       = "empty_result"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable code.
	Code string

	// Human-readable message.
	Message string

	// Line is the 1-based data line the error refers to, or zero.
	Line int

	// Text is the offending input (a line or a token), if any.
	Text string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ledger error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("ledger error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		if e.Err != nil {
			return e.Message + ": " + causeMessage(e.Err)
		}
		return e.Message
	}
	return "Internal error."
}

// ErrorLine returns the data line an application error refers to, or zero.
func ErrorLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}

func causeMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return ErrorMessage(e)
	}
	return err.Error()
}
