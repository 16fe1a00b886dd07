// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError is an error whose message is meant for the person at the terminal.
// Hint, when set, names the command that resolves it.
type UserError struct {
	Err     error
	Message string
	Hint    string
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError wraps err with a message for the terminal.
func NewUserError(message string, err error) *UserError {
	return &UserError{Message: message, Err: err}
}

// WithHint attaches a follow-up suggestion to the error.
func (e *UserError) WithHint(hint string) *UserError {
	e.Hint = hint
	return e
}
