// Package gemini implements generation.Gateway on top of Google's Gemini API
// (google.golang.org/genai).
//
// This package is an infrastructure adapter: it is the only code in the
// studio that talks to the model provider. It translates composed prompts,
// response schemas and chat contents into GenerateContent calls and maps
// provider failures onto the typed errors of the generation package.
//
// Key properties:
//
//   - One request per call. Nothing is retried and no partial result is
//     assembled.
//   - The gateway is built once at startup from config.LLMConfig and shared
//     by every panel. Without an API key it still builds, and every call
//     returns generation.ErrConfiguration.
//   - An optional per-call timeout is applied through the request context.
//     Callers cancel in-flight requests by cancelling their context.
//   - The genai client is reached through the narrow ContentGenerator
//     interface so tests can substitute a fake.
package gemini
