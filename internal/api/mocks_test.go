package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gemini-studio/internal/api/middleware"
	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/service"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardService mocks service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GenerateFromTopic(ctx context.Context, topic string) (*domain.DashboardSpec, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSpec), args.Error(1)
}

func (m *MockDashboardService) GenerateFromFile(
	ctx context.Context,
	filename string,
	content []byte,
) (*domain.DashboardSpec, error) {
	args := m.Called(ctx, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSpec), args.Error(1)
}

// MockAutomationService mocks service.AutomationService
type MockAutomationService struct {
	mock.Mock
}

func (m *MockAutomationService) Run(ctx context.Context, input, taskLabel string) (*domain.AutomationResult, error) {
	args := m.Called(ctx, input, taskLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationResult), args.Error(1)
}

func (m *MockAutomationService) Tasks() []string {
	return m.Called().Get(0).([]string)
}

// MockChatService mocks service.ChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) CreateSession(ctx context.Context) (*service.ChatSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatSession), args.Error(1)
}

func (m *MockChatService) GetSession(ctx context.Context, id string) (*service.ChatSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatSession), args.Error(1)
}

func (m *MockChatService) SendMessage(ctx context.Context, id, text string) (*service.ChatReply, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatReply), args.Error(1)
}

var (
	_ service.DashboardService  = (*MockDashboardService)(nil)
	_ service.AutomationService = (*MockAutomationService)(nil)
	_ service.ChatService       = (*MockChatService)(nil)
)

// newTestRouter mounts a handler on a chi router behind the trace middleware.
func newTestRouter(method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Method(method, pattern, h)
	return r
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}
