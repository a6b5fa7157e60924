package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrSubmissionInFlight is returned when a submit arrives while the
	// session is already dispatching a record.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrSessionClosed is returned for any submit after the session closed.
	ErrSessionClosed = errors.New("session closed")
)

// Refusal reasons carried by a ValidationError.
var (
	ErrMissingValue    = errors.New("missing required value")
	ErrNoFileChosen    = errors.New("no definition file chosen")
	ErrNoFolderChosen  = errors.New("no definition folder chosen")
	ErrInvalidStrategy = errors.New("invalid storage strategy")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors and,
// optionally, the refusal reason that produced them.
type ValidationError struct {
	Reason error
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap exposes both ErrValidation and the refusal reason to errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Reason}
}

// NewRefusal creates a ValidationError tagged with a refusal reason.
func NewRefusal(reason error, errs ...FieldError) *ValidationError {
	return &ValidationError{Reason: reason, Errors: errs}
}
