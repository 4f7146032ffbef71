package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrValidation           = errors.New("validation error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrConfirmationMismatch = errors.New("confirmation mismatch")
	ErrStoreUnavailable     = errors.New("store unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DuplicateError reports a term collision, naming the existing term the
// candidate collides with. For acronym-base collisions ("ABC (Alpha Beta
// Corp)" vs "ABC") Existing differs from the candidate text.
type DuplicateError struct {
	Term     string
	Existing string
}

func (e *DuplicateError) Error() string {
	if e.Existing != "" && !strings.EqualFold(e.Term, e.Existing) {
		return fmt.Sprintf("term %q collides with existing term %q", e.Term, e.Existing)
	}
	return fmt.Sprintf("term %q already exists", e.Term)
}

func (e *DuplicateError) Unwrap() error { return ErrAlreadyExists }
