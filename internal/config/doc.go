// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env files, an optional
// config.yaml). It provides type-safe access to the settings needed by the
// HTTP server, the Gemini gateway, and the chat session store while keeping
// configuration details separate from business logic.
//
// A missing Gemini API key is deliberately not a validation failure: the
// server starts without it and the gateway reports the problem on the first
// model call instead.
package config
