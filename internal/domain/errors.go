package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken surfaces a storage-level unique violation on the email column.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials indicates a failed email/password authentication.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSelfFollow indicates an attempt to create a follow edge from a user to itself.
	ErrSelfFollow = errors.New("cannot follow self")
)

// ErrorKind classifies a single validation failure.
type ErrorKind string

const (
	Required      ErrorKind = "required"
	TooLong       ErrorKind = "too_long"
	TooShort      ErrorKind = "too_short"
	InvalidFormat ErrorKind = "invalid_format"
	NotUnique     ErrorKind = "not_unique"
)

// ValidationError describes one failed rule on one field.
type ValidationError struct {
	Field string
	Kind  ErrorKind
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

// ValidationErrors collects every failed rule for a candidate record. It is
// returned as a value from create/update paths so callers can inspect each
// failure; an empty list means the candidate is valid.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether the list contains a failure of the given field and kind.
func (e ValidationErrors) Has(field string, kind ErrorKind) bool {
	for _, v := range e {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}
