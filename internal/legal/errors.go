package legal

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrorInvalidMode    ErrorCode = "INVALID_MODE"
	ErrorAuthentication ErrorCode = "AUTHENTICATION_FAILED"
	ErrorNotFound       ErrorCode = "NOT_FOUND"
)

// Error is a failure the HTTP layer reports to the client. Message is safe to
// show to users; Err carries the underlying cause for logs.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("legal: %s (%s)", e.Code, e.Message)
	}
	return fmt.Sprintf("legal: %s (%s): %v", e.Code, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// AsError reports whether err carries a *Error and returns it.
func AsError(err error) (*Error, bool) {
	var le *Error
	if errors.As(err, &le) && le != nil {
		return le, true
	}
	return nil, false
}
