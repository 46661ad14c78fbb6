package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedFileType is returned when an uploaded file does not have
	// one of the accepted text extensions.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidRole is returned when a chat message role is not user or model.
	ErrInvalidRole = errors.New("invalid message role")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the underlying error so errors.Is can match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
