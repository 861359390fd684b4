package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUserNotFound is returned by the repository when no document matches.
// Services translate it into the APIError appropriate for their route
// (404 on reads, 401 when a token subject has been deleted).
var ErrUserNotFound = errors.New("user not found")

// APIError is an intentionally raised failure carrying the HTTP status code
// and message that should reach the client verbatim.
type APIError struct {
	Code    int
	Message string
}

func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// FieldError names a single attribute that failed validation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates per-field failures raised at the store
// boundary. The wire message is the field messages joined with ". ".
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ". ")
}

// DuplicateKeyError signals a unique-index conflict. Field names the first
// conflicting key (in practice always "email").
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on field %q", e.Field)
}
