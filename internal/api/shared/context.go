package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is the key type for values this package stores in a context.
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader is the response header that echoes the trace ID
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a trace ID to the context.
// An incoming ID is kept when it is a well-formed UUID; otherwise a new one
// is generated. This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context, incoming string) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID(incoming))
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func newTraceID(incoming string) string {
	if id, err := uuid.Parse(strings.TrimSpace(incoming)); err == nil {
		return strings.ReplaceAll(id.String(), "-", "")
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
