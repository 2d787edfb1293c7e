package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrPaywall       = errors.New("paywall")
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// Conflict reasons reported by ConflictError.
const (
	ConflictSuperseded    = "superseded"
	ConflictInvalidStatus = "invalid status transition"
	ConflictNotApproved   = "project not approved"
)

// ConflictError reports an operation rejected because of the current state
// of the resource (e.g. deleting a superseded artifact version).
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Reason)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError with the given reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// PaywallError is raised when a quota-limited action exceeds the plan limit.
// Usage is the counter value before the rejected attempt.
type PaywallError struct {
	Kind  QuotaKind
	Plan  Plan
	Limit int
	Usage int
}

func (e *PaywallError) Error() string {
	return fmt.Sprintf("paywall: %s quota exhausted on plan %s (%d/%d)", e.Kind, e.Plan, e.Usage, e.Limit)
}

func (e *PaywallError) Unwrap() error { return ErrPaywall }
