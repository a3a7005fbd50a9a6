// Package apperr holds the error taxonomy shared by the store and the API.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by accessors when no record matches an id.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a request payload before any storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingField reports the first absent required key of a create payload.
func MissingField(key string) *ValidationError {
	return &ValidationError{
		Field:   key,
		Message: fmt.Sprintf("Missing '%s' in request body", key),
	}
}

// EmptyUpdate reports a partial update carrying no updatable field.
func EmptyUpdate(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// InvalidBody reports a body that is not a JSON object of the expected shape.
func InvalidBody(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// NotFoundError is a resource-specific 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
