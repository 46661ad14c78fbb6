package testutils_test

import (
	"net/http"
	"testing"

	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSlogHandler(t *testing.T) {
	t.Parallel()
	log, h := testutils.NewTestLogger()

	log.With("component", "chat_service").Info("chat turn completed", "message_count", 3)
	log.Warn("other")

	entries := h.FindByMessage("chat turn completed")
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "chat_service", entries[0]["component"])
	assert.EqualValues(t, 3, entries[0]["message_count"])
	assert.Len(t, h.Entries(), 2)

	h.Clear()
	assert.Empty(t, h.Entries())
}

func TestAssertErrorResponse(t *testing.T) {
	t.Parallel()
	srv := testutils.CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(shared.SetTraceID(r.Context(), ""))
		shared.RespondWithError(w, r, http.StatusNotFound, "Chat session not found")
	}))

	resp := testutils.Get(t, srv.URL)

	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Chat session not found")
}
