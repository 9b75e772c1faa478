// Package clierr defines structured error types for CLI commands.
// Errors carry a machine-readable code and a human-readable message
// so the top-level Execute can map them to exit codes uniformly.
package clierr

import "fmt"

// Error code constants — uppercase, underscore-separated, stable across minor versions.
const (
	ParseError    = "PARSE_ERROR"
	IOError       = "IO_ERROR"
	InvalidNote   = "INVALID_NOTE"
	InvalidIndex  = "INVALID_INDEX"
	InternalError = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that carries the underlying cause, keeping it
// inspectable through errors.Is and errors.As.
func Wrap(code string, err error, context string) *Error {
	return &Error{Code: code, Message: context + ": " + err.Error(), Err: err}
}

// ExitCode returns 2 for InternalError, 1 for all others.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2 //nolint:mnd // exit code 2 for internal errors
	}
	return 1
}
