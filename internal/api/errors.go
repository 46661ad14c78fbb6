package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"github.com/phrazzld/gemini-studio/internal/service"
)

// User-facing messages for model failures.
const (
	MsgConfiguration    = "API Key not found in environment variables."
	MsgDashboardFailed  = "Failed to generate dashboard"
	MsgAutomationFailed = "Error executing automation task."
	MsgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError
	var validationErr *domain.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	// Bad request errors
	case errors.As(err, &validationErr),
		errors.As(err, &fieldErrs),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnsupportedFileType),
		errors.Is(err, prompt.ErrEmptyInput):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrRequestInFlight):
		return http.StatusConflict

	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	// The server runs without a model credential
	case errors.Is(err, generation.ErrConfiguration):
		return http.StatusServiceUnavailable

	// Upstream model failures
	case errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrMalformedResponse),
		errors.Is(err, generation.ErrTransport):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
// Upstream and unknown errors get MsgUnexpected.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var maxBytesErr *http.MaxBytesError
	var validationErr *domain.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &fieldErrs):
		return SanitizeValidationError(fieldErrs)

	case errors.As(err, &validationErr) && validationErr.Field != "":
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, shared.ErrMalformedJSON):
		return "Invalid request format"

	case errors.Is(err, prompt.ErrEmptyInput):
		return "Input cannot be empty"

	case errors.Is(err, domain.ErrUnsupportedFileType):
		return "Please upload a supported text format (CSV, JSON, TXT, MD)."

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, service.ErrSessionNotFound):
		return "Chat session not found"

	case errors.Is(err, service.ErrRequestInFlight):
		return "A request is already in progress for this session"

	case errors.As(err, &maxBytesErr):
		return fmt.Sprintf("Upload exceeds the %d byte limit", maxBytesErr.Limit)

	case errors.Is(err, generation.ErrConfiguration):
		return MsgConfiguration

	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the error response for err. defaultMsg replaces the
// generic message for upstream and unexpected failures; it may be empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == MsgUnexpected && defaultMsg != "" {
		message = defaultMsg
	}

	var opts []shared.ResponseOption
	if status == http.StatusConflict {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// SanitizeValidationError turns validator field errors into a user-friendly
// message naming the first failing field.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
