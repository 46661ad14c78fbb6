package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDashboardService_NilDependencies(t *testing.T) {
	t.Parallel()
	composer := newTestComposer(t)

	tests := []struct {
		name     string
		composer PromptComposer
		gateway  generation.Gateway
		wantMsg  string
	}{
		{name: "nil composer", gateway: &MockGateway{}, wantMsg: "composer cannot be nil"},
		{name: "nil gateway", composer: composer, wantMsg: "gateway cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewDashboardService(tt.composer, tt.gateway, newTestLogger())
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	_, err := NewDashboardService(composer, &MockGateway{}, nil)
	assert.ErrorContains(t, err, "logger cannot be nil")
}

func TestDashboardService_GenerateFromTopic(t *testing.T) {
	t.Parallel()
	gw := &MockGateway{}
	want := sampleDashboard()
	gw.On("GenerateDashboard", mock.Anything,
		mock.MatchedBy(func(p string) bool { return strings.Contains(p, `"EV Sales in Europe 2024"`) }),
		mock.Anything,
	).Return(want, nil).Once()

	svc, err := NewDashboardService(newTestComposer(t), gw, newTestLogger())
	require.NoError(t, err)

	got, err := svc.GenerateFromTopic(context.Background(), "EV Sales in Europe 2024")

	require.NoError(t, err)
	assert.Same(t, want, got)
	gw.AssertExpectations(t)
}

func TestDashboardService_GenerateFromTopic_EmptyInput(t *testing.T) {
	t.Parallel()
	gw := &MockGateway{}
	svc, err := NewDashboardService(newTestComposer(t), gw, newTestLogger())
	require.NoError(t, err)

	_, err = svc.GenerateFromTopic(context.Background(), "  ")

	assert.ErrorIs(t, err, prompt.ErrEmptyInput)
	gw.AssertNotCalled(t, "GenerateDashboard", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_GenerateFromFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantErr  error
		wantCall bool
	}{
		{name: "csv", filename: "sales.csv", content: []byte("month,total\nJan,10\n"), wantCall: true},
		{name: "upper case json", filename: "DATA.JSON", content: []byte(`{"a":1}`), wantCall: true},
		{name: "markdown", filename: "notes.md", content: []byte("# Notes"), wantCall: true},
		{name: "png rejected", filename: "data.png", content: []byte("\x89PNG"), wantErr: domain.ErrUnsupportedFileType},
		{name: "no extension", filename: "README", content: []byte("x"), wantErr: domain.ErrUnsupportedFileType},
		{name: "binary content", filename: "data.txt", content: []byte{0xff, 0xfe, 0xfd}, wantErr: domain.ErrValidation},
		{name: "empty file", filename: "empty.txt", content: nil, wantErr: prompt.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &MockGateway{}
			if tt.wantCall {
				gw.On("GenerateDashboard", mock.Anything,
					mock.MatchedBy(func(p string) bool { return strings.Contains(p, string(tt.content)) }),
					mock.Anything,
				).Return(sampleDashboard(), nil).Once()
			}
			svc, err := NewDashboardService(newTestComposer(t), gw, newTestLogger())
			require.NoError(t, err)

			spec, err := svc.GenerateFromFile(context.Background(), tt.filename, tt.content)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, spec)
				gw.AssertNotCalled(t, "GenerateDashboard", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, spec)
			gw.AssertExpectations(t)
		})
	}
}

func TestDashboardService_GatewayErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{
		generation.ErrConfiguration,
		generation.ErrEmptyResponse,
		generation.ErrMalformedResponse,
		generation.ErrTransport,
	} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			gw := &MockGateway{}
			gw.On("GenerateDashboard", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, sentinel).Once()
			svc, err := NewDashboardService(newTestComposer(t), gw, newTestLogger())
			require.NoError(t, err)

			spec, err := svc.GenerateFromTopic(context.Background(), "topic")

			assert.ErrorIs(t, err, sentinel)
			assert.Nil(t, spec)
			gw.AssertNumberOfCalls(t, "GenerateDashboard", 1)
		})
	}
}

func TestNewServiceError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewServiceError("op", "msg", nil))
	assert.Same(t, ErrSessionNotFound, NewServiceError("op", "msg", ErrSessionNotFound))

	cause := errors.New("template exploded")
	err := NewServiceError("generate_dashboard_topic", "failed to compose prompt", cause)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "generate_dashboard_topic", svcErr.Operation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "service generate_dashboard_topic failed: failed to compose prompt: template exploded", err.Error())
}

