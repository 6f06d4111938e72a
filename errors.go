package roster

import (
	"errors"
	"fmt"
)

// Common errors returned by the Roster client.
var (
	// ErrNotFound is returned when a person does not exist.
	ErrNotFound = errors.New("person not found")

	// ErrEmptyName is returned when a name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPhone is returned when a phone number does not match the
	// Australian mobile format (04 followed by 8 digits).
	ErrInvalidPhone = errors.New("invalid phone number: must match 04XXXXXXXX")

	// ErrNoFields is returned when an update contains nothing to change.
	ErrNoFields = errors.New("no fields to update")

	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("store is closed")
)

// ConflictError is returned when a uniqueness constraint is violated.
// Extractable via errors.As().
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already in use: %s", e.Field, e.Value)
}

// ValidationError is returned when configuration validation fails.
// Extractable via errors.As().
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}
