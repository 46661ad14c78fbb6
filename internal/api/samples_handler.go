package api

import (
	"net/http"
	"slices"

	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/domain"
)

// ListSamples handles GET /api/samples requests
func ListSamples(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newSamplesResponse())
}

// newSamplesResponse builds the samples payload from copies of the built-in
// catalogs.
func newSamplesResponse() SamplesResponse {
	return SamplesResponse{
		SamplePrompts:   domain.DefaultSamplePrompts(),
		AutomationTasks: slices.Clone(domain.AutomationTasks),
	}
}
