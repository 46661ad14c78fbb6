package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"google.golang.org/genai"
)

// MockGateway implements generation.Gateway for testing
type MockGateway struct {
	// Function fields override the default responses when set
	GenerateDashboardFn func(ctx context.Context, prompt string, schema *genai.Schema) (*domain.DashboardSpec, error)
	RunAutomationFn     func(ctx context.Context, prompt, systemInstruction string, temperature float32) (string, error)
	SendChatFn          func(ctx context.Context, contents []*genai.Content) (string, error)

	// Default response values
	Dashboard *domain.DashboardSpec
	Text      string
	Err       error

	mu      sync.Mutex
	prompts []string
	counts  map[string]int
}

var _ generation.Gateway = (*MockGateway)(nil)

// NewMockGatewayWithError creates a MockGateway whose every call fails with err
func NewMockGatewayWithError(err error) *MockGateway {
	return &MockGateway{Err: err}
}

// GenerateDashboard implements the generation.Gateway interface
func (m *MockGateway) GenerateDashboard(
	ctx context.Context,
	prompt string,
	schema *genai.Schema,
) (*domain.DashboardSpec, error) {
	m.record("GenerateDashboard", prompt)
	if m.GenerateDashboardFn != nil {
		return m.GenerateDashboardFn(ctx, prompt, schema)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Dashboard, nil
}

// RunAutomation implements the generation.Gateway interface
func (m *MockGateway) RunAutomation(
	ctx context.Context,
	prompt, systemInstruction string,
	temperature float32,
) (string, error) {
	m.record("RunAutomation", prompt)
	if m.RunAutomationFn != nil {
		return m.RunAutomationFn(ctx, prompt, systemInstruction, temperature)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// SendChat implements the generation.Gateway interface. The recorded prompt
// is the text of the last turn.
func (m *MockGateway) SendChat(ctx context.Context, contents []*genai.Content) (string, error) {
	prompt := ""
	if n := len(contents); n > 0 && contents[n-1] != nil && len(contents[n-1].Parts) > 0 {
		prompt = contents[n-1].Parts[0].Text
	}
	m.record("SendChat", prompt)
	if m.SendChatFn != nil {
		return m.SendChatFn(ctx, contents)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// Calls returns how many times method was called
func (m *MockGateway) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[method]
}

// Prompts returns the prompts seen so far, in call order
func (m *MockGateway) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears the call tracking state
func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
	m.counts = nil
}

func (m *MockGateway) record(method, prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[method]++
	m.prompts = append(m.prompts, prompt)
}
