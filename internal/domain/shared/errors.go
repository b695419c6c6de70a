package shared

import (
	"fmt"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)

// ValidationError represents malformed input rejected before any transaction opens.
// FieldErrors maps field names to human-readable messages.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.FieldErrors))
	for field, msg := range e.FieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates a validation error with field-level messages
func NewValidationError(fieldErrors map[string]string) *ValidationError {
	return &ValidationError{FieldErrors: fieldErrors}
}

// NewFieldError creates a validation error for a single field
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{FieldErrors: map[string]string{field: message}}
}
