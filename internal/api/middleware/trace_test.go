package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTrace string
	var seenLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
		seenLogger, _ = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	TraceMiddleware(base)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seenTrace)
	assert.Equal(t, seenTrace, rr.Header().Get(shared.TraceIDHeader))
	require.NotNil(t, seenLogger)
	assert.Contains(t, buf.String(), `"trace_id":"`+seenTrace+`"`)
	assert.Contains(t, buf.String(), "request started")
}

func TestTraceMiddleware_KeepsIncomingID(t *testing.T) {
	t.Parallel()
	var seenTrace string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(shared.TraceIDHeader, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	TraceMiddleware(nil)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "6ba7b8109dad11d180b400c04fd430c8", seenTrace)
}
