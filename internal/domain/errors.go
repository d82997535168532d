package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when the input has the wrong shape or range.
// It is an expected outcome and carries field level detail.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns nil when no field errors were collected
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError is returned when a referenced id does not exist
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError is returned when an operation is illegal in the current state.
// Context carries the state a caller needs to explain the conflict,
// for example the current status or the current max history id.
type ConflictError struct {
	Reason  string
	Context map[string]any
}

func (e *ConflictError) Error() string {
	if len(e.Context) == 0 {
		return e.Reason
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Reason, strings.Join(parts, ", "))
}

// NewConflictError creates a conflict error
func NewConflictError(reason string, context map[string]any) *ConflictError {
	return &ConflictError{Reason: reason, Context: context}
}

// IntegrityError is returned when the store rejects a write because of a
// uniqueness constraint. Field names the violated column.
type IntegrityError struct {
	Field      string
	Constraint string
}

func (e *IntegrityError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("integrity constraint %q violated", e.Constraint)
	}
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err wraps a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsIntegrity reports whether err wraps an IntegrityError
func IsIntegrity(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}
