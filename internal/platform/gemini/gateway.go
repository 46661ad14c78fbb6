package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/gemini-studio/internal/config"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/redact"
	"google.golang.org/genai"
)

// ContentGenerator is the subset of *genai.Models used by the gateway.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Gateway implements generation.Gateway using the Gemini API.
type Gateway struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues requests; nil when no API key is configured
	models ContentGenerator

	// model is the name of the Gemini model to use
	model string

	// timeout bounds a single call; zero means none
	timeout time.Duration
}

var _ generation.Gateway = (*Gateway)(nil)

// NewGateway creates a Gateway from the LLM configuration.
//
// A missing API key is not an error here: the gateway is returned without a
// client and reports generation.ErrConfiguration on every call, so the rest
// of the server keeps working.
func NewGateway(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Gateway, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	g := &Gateway{
		logger:  logger,
		model:   cfg.ModelName,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}

	if cfg.GeminiAPIKey == "" {
		logger.WarnContext(ctx, "Gemini API key not configured, model calls will fail",
			"model", cfg.ModelName)
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %s", redact.Error(err))
	}
	g.models = client.Models

	logger.InfoContext(ctx, "Gemini gateway initialized",
		"model", g.model,
		"timeout_seconds", cfg.RequestTimeoutSeconds)

	return g, nil
}

// NewGatewayWithGenerator creates a Gateway around an existing
// ContentGenerator. A nil models behaves like a missing API key.
func NewGatewayWithGenerator(
	logger *slog.Logger,
	models ContentGenerator,
	model string,
	timeout time.Duration,
) *Gateway {
	return &Gateway{
		logger:  logger,
		models:  models,
		model:   model,
		timeout: timeout,
	}
}

// GenerateDashboard issues a structured-generation request constrained to
// schema and parses the reply into a DashboardSpec.
func (g *Gateway) GenerateDashboard(
	ctx context.Context,
	prompt string,
	schema *genai.Schema,
) (*domain.DashboardSpec, error) {
	text, err := g.generate(ctx, "dashboard",
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		})
	if err != nil {
		return nil, err
	}
	if text == "" {
		g.logger.WarnContext(ctx, "Gemini returned no dashboard data")
		return nil, generation.ErrEmptyResponse
	}

	spec, err := generation.ParseDashboard(text, schema)
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to parse dashboard response",
			"error", err,
			"response_length", len(text))
		return nil, err
	}

	g.logger.InfoContext(ctx, "Dashboard generated",
		"metric_count", len(spec.Metrics),
		"chart_count", len(spec.Charts))
	if len(spec.Metrics) != domain.DashboardMetricCount || len(spec.Charts) != domain.DashboardChartCount {
		g.logger.DebugContext(ctx, "Dashboard counts differ from the requested ones",
			"metric_count", len(spec.Metrics),
			"chart_count", len(spec.Charts))
	}

	return spec, nil
}

// RunAutomation issues a free-text request with a system instruction. An
// empty reply becomes generation.AutomationFallback.
func (g *Gateway) RunAutomation(
	ctx context.Context,
	prompt, systemInstruction string,
	temperature float32,
) (string, error) {
	temp := temperature
	text, err := g.generate(ctx, "automation",
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			Temperature:       &temp,
		})
	if err != nil {
		return "", err
	}
	if text == "" {
		return generation.AutomationFallback, nil
	}
	return text, nil
}

// SendChat issues a multi-turn request with the full conversation.
func (g *Gateway) SendChat(ctx context.Context, contents []*genai.Content) (string, error) {
	return g.generate(ctx, "chat", contents, nil)
}

// generate performs exactly one GenerateContent call and returns the reply text.
func (g *Gateway) generate(
	ctx context.Context,
	task string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (string, error) {
	if g.models == nil {
		g.logger.ErrorContext(ctx, "Gemini call attempted without an API key", "task", task)
		return "", generation.ErrConfiguration
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"task", task,
		"model", g.model,
		"turns", len(contents))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
	elapsed := time.Since(start)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"task", task,
			"error", redact.Error(err),
			"duration_ms", elapsed.Milliseconds())
		return "", fmt.Errorf("%w: %w", generation.ErrTransport, err)
	}

	if reason, blocked := blockReason(resp); blocked {
		g.logger.WarnContext(ctx, "Gemini blocked the request",
			"task", task,
			"reason", reason)
		return "", fmt.Errorf("%w: %w (%s)", generation.ErrTransport, generation.ErrContentBlocked, reason)
	}

	text := responseText(resp)
	g.logger.InfoContext(ctx, "Gemini API call successful",
		"task", task,
		"response_length", len(text),
		"duration_ms", elapsed.Milliseconds())

	return text, nil
}

// blockReason reports whether the provider refused the prompt or stopped the
// first candidate for safety reasons.
func blockReason(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil {
		return "", false
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return string(resp.PromptFeedback.BlockReason), true
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil &&
		resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return string(genai.FinishReasonSafety), true
	}
	return "", false
}

// responseText concatenates the text parts of the first candidate, skipping
// thought summaries.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
