package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-guarantees/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeTooLarge         ErrorCode = "request_too_large"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Fields lists the invalid input fields of a validation failure
	Fields []domain.FieldError `json:"fields,omitempty"`
	// Context carries the current state that caused a conflict
	Context map[string]any `json:"context,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(fields []domain.FieldError) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewConflictError(message string, context map[string]any) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Context: context,
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewTooLargeError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTooLarge,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain maps a domain error onto its HTTP status and API error.
// Errors outside the domain taxonomy map to 500 and ok is false.
func FromDomain(err error) (status int, apiErr *APIError, ok bool) {
	var (
		verr      *domain.ValidationError
		notFound  *domain.NotFoundError
		conflict  *domain.ConflictError
		integrity *domain.IntegrityError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, NewValidationError(verr.Fields), true
	case errors.As(err, &notFound):
		return http.StatusNotFound, NewNotFoundError(notFound.Error()), true
	case errors.As(err, &conflict):
		return http.StatusConflict, NewConflictError(conflict.Reason, conflict.Context), true
	case errors.As(err, &integrity):
		apiErr := NewConflictError(integrity.Error(), map[string]any{"constraint": integrity.Constraint})
		if integrity.Field != "" {
			apiErr.Fields = []domain.FieldError{{Field: integrity.Field, Message: "already exists"}}
		}
		return http.StatusConflict, apiErr, true
	}
	return http.StatusInternalServerError, NewInternalError("Internal server error"), false
}
