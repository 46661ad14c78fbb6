package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrConfiguration is returned when no API credential is configured.
	ErrConfiguration = errors.New("gemini API key is not configured")

	// ErrEmptyResponse is returned when a structured generation call yields no text.
	ErrEmptyResponse = errors.New("no data returned from language model")

	// ErrMalformedResponse is returned when the LLM response is not valid JSON
	// or is missing a required field.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrTransport is returned for network, quota and provider-side failures.
	ErrTransport = errors.New("language model request failed")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters.
	// It is always reported together with ErrTransport.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)
