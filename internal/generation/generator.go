package generation

import (
	"context"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"google.golang.org/genai"
)

// AutomationFallback is returned by RunAutomation when the model produces no text.
const AutomationFallback = "No response generated."

// Gateway is the sole call boundary to the external model provider.
// Each method issues exactly one request; nothing is retried.
type Gateway interface {
	// GenerateDashboard issues a structured-generation request constrained to
	// schema and validates the result with ParseDashboard.
	GenerateDashboard(ctx context.Context, prompt string, schema *genai.Schema) (*domain.DashboardSpec, error)

	// RunAutomation issues a free-text request. An empty reply is returned as
	// AutomationFallback rather than an error.
	RunAutomation(ctx context.Context, prompt, systemInstruction string, temperature float32) (string, error)

	// SendChat issues a multi-turn request with the full conversation. An
	// empty reply is returned as "".
	SendChat(ctx context.Context, contents []*genai.Content) (string, error)
}
