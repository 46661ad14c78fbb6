package mocks

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// ContentGeneratorCall records one GenerateContent invocation.
type ContentGeneratorCall struct {
	Ctx      context.Context
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// MockContentGenerator stands in for *genai.Models behind the Gemini gateway.
type MockContentGenerator struct {
	// GenerateContentFn allows test cases to mock the GenerateContent behavior
	GenerateContentFn func(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)

	// Replies are returned in order as single-candidate text responses; once
	// exhausted every call replies with empty text.
	Replies []string

	// Err, when set, is returned by every call
	Err error

	mu    sync.Mutex
	calls []ContentGeneratorCall
}

// GenerateContent implements the gemini.ContentGenerator interface
func (m *MockContentGenerator) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ContentGeneratorCall{Ctx: ctx, Model: model, Contents: contents, Config: config})
	fn := m.GenerateContentFn
	var text string
	if len(m.Replies) > 0 {
		text, m.Replies = m.Replies[0], m.Replies[1:]
	}
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, model, contents, config)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return TextResponse(text), nil
}

// Calls returns a copy of the recorded calls
func (m *MockContentGenerator) Calls() []ContentGeneratorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ContentGeneratorCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many requests were issued
func (m *MockContentGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// TextResponse builds a response whose first candidate holds one text part
// per element of parts.
func TextResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: string(genai.RoleModel)}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}
