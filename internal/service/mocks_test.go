package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// MockGateway mocks the generation.Gateway interface
type MockGateway struct {
	mock.Mock
}

var _ generation.Gateway = (*MockGateway)(nil)

func (m *MockGateway) GenerateDashboard(
	ctx context.Context,
	prompt string,
	schema *genai.Schema,
) (*domain.DashboardSpec, error) {
	args := m.Called(ctx, prompt, schema)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSpec), args.Error(1)
}

func (m *MockGateway) RunAutomation(
	ctx context.Context,
	prompt, systemInstruction string,
	temperature float32,
) (string, error) {
	args := m.Called(ctx, prompt, systemInstruction, temperature)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) SendChat(ctx context.Context, contents []*genai.Content) (string, error) {
	args := m.Called(ctx, contents)
	return args.String(0), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestComposer(t *testing.T) *prompt.Composer {
	t.Helper()
	c, err := prompt.New()
	require.NoError(t, err)
	return c
}

func sampleDashboard() *domain.DashboardSpec {
	return &domain.DashboardSpec{
		Title:   "EV Sales",
		Summary: "Sales doubled.",
		Metrics: []domain.Metric{
			{Label: "Units", Value: "1.2M", Trend: domain.TrendUp},
			{Label: "Share", Value: "18%", Trend: domain.TrendUp},
			{Label: "Price", Value: "$41k", Trend: domain.TrendDown},
		},
		Charts: []domain.Chart{
			{Title: "By month", Type: domain.ChartTypeBar, XAxisKey: "name", DataKey: "value"},
			{Title: "Share", Type: domain.ChartTypeLine, XAxisKey: "name", DataKey: "value"},
		},
	}
}
