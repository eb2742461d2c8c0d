// Package errors provides centralized error definitions and error handling
// utilities for tourguide. It defines semantic error types, sentinel errors,
// and re-exports the standard library helpers so callers can import a single
// package for all error handling.
//
// # Error Types
//
//   - NotFoundError: a named resource (walkthrough target, theme, manifest)
//     could not be located
//   - ValidationError: invalid input, typically a step manifest field
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewNotFoundError("target", "sidebar")
//	err := errors.NewValidationError("steps[2]: unknown vertical anchor").WithField("vanchor")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrManifestEmpty) { ... }
//
//	var nf *errors.NotFoundError
//	if errors.As(err, &nf) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Step manifest sentinel errors
var (
	// ErrManifestEmpty indicates that a step manifest contains no steps.
	ErrManifestEmpty = New("step manifest contains no steps")
	// ErrManifestVersion indicates an unsupported manifest version.
	ErrManifestVersion = New("unsupported step manifest version")
)

// Theme sentinel errors
var (
	// ErrThemeUnknown indicates that a theme name is not recognized.
	ErrThemeUnknown = New("unknown theme")
)

// -----------------------------------------------------------------------------
// Semantic Error Types
// -----------------------------------------------------------------------------

// NotFoundError indicates that a named resource could not be located.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
	cause        error
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// ValidationError indicates invalid input or state.
type ValidationError struct {
	Message string
	Field   string
	Value   any
	cause   error
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the offending value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field: %s)", msg, e.Field)
	}
	if e.Value != nil {
		msg = fmt.Sprintf("%s (got: %v)", msg, e.Value)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.cause
}
