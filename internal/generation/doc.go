// Package generation defines the boundary between the studio's panels and
// the external LLM (Gemini). It holds the Gateway interface implemented by
// the provider adapter, the typed errors every content generation call can
// fail with, and the response validator that turns raw model output into a
// domain.DashboardSpec or rejects it.
package generation
