// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the hioload-exec library.

package api

import "fmt"

// Common errors used across the library. The readiness pass itself has no
// fatal error class (a dead group, dead entity or unknown handle is simply
// not admitted); these cover misuse of the API surface and failures of the
// external wait primitive as seen by callers.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotFound        = fmt.Errorf("resource not found")
	ErrWaitFailed      = fmt.Errorf("wait primitive failed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeNotFound
	ErrCodeWaitFailed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error code back to its sentinel so callers can match
// structured errors with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeNotFound:
		return ErrNotFound
	case ErrCodeWaitFailed:
		return ErrWaitFailed
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
