package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
)

// Common service errors - sentinel errors used across service implementations.
// The API layer maps these to HTTP status codes.
var (
	// ErrSessionNotFound indicates the chat session does not exist or has expired.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrRequestInFlight indicates the session already has an outstanding model request.
	// API layer should map this to HTTP 409 Conflict.
	ErrRequestInFlight = errors.New("a request is already in progress for this session")
)

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "generate_dashboard", "send_message")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Errors that already carry a known sentinel are returned unchanged so callers
// can map them without unwrapping a service layer.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if isKnownError(err) {
		return err
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func isKnownError(err error) bool {
	for _, target := range []error{
		ErrSessionNotFound,
		ErrRequestInFlight,
		prompt.ErrEmptyInput,
		domain.ErrValidation,
		domain.ErrUnsupportedFileType,
		generation.ErrConfiguration,
		generation.ErrEmptyResponse,
		generation.ErrMalformedResponse,
		generation.ErrTransport,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
