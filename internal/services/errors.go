package services

import "errors"

// ErrNotFound covers stale-id lookups; handlers render it as a 404
// rather than a crash path
var ErrNotFound = errors.New("not found")

// ValidationError is a user-facing rejection: the triggering change is
// not applied and the message is surfaced to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
