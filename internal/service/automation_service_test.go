package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutomationService_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		task     string
		wantTask string
	}{
		{name: "catalog task", task: "Analyze Sentiment and Tone", wantTask: "Analyze Sentiment and Tone"},
		{name: "free form task", task: "  Write a haiku  ", wantTask: "Write a haiku"},
		{name: "blank task uses default", task: "", wantTask: domain.DefaultAutomationTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &MockGateway{}
			gw.On("RunAutomation", mock.Anything,
				`Input Data: "meeting notes"`,
				mock.MatchedBy(func(s string) bool {
					return strings.Contains(s, "Your task is: "+tt.wantTask+".")
				}),
				prompt.AutomationTemperature,
			).Return("## Done", nil).Once()

			svc, err := NewAutomationService(newTestComposer(t), gw, newTestLogger())
			require.NoError(t, err)

			result, err := svc.Run(context.Background(), "meeting notes", tt.task)

			require.NoError(t, err)
			assert.Equal(t, &domain.AutomationResult{Task: tt.wantTask, Output: "## Done"}, result)
			gw.AssertExpectations(t)
		})
	}
}

func TestAutomationService_Run_Fallback(t *testing.T) {
	t.Parallel()
	gw := &MockGateway{}
	gw.On("RunAutomation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(generation.AutomationFallback, nil).Once()
	svc, err := NewAutomationService(newTestComposer(t), gw, newTestLogger())
	require.NoError(t, err)

	result, err := svc.Run(context.Background(), "text", "")

	require.NoError(t, err)
	assert.Equal(t, "No response generated.", result.Output)
}

func TestAutomationService_Run_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty input makes no call", func(t *testing.T) {
		gw := &MockGateway{}
		svc, err := NewAutomationService(newTestComposer(t), gw, newTestLogger())
		require.NoError(t, err)

		_, err = svc.Run(context.Background(), "\t", "Analyze Sentiment and Tone")

		assert.ErrorIs(t, err, prompt.ErrEmptyInput)
		gw.AssertNotCalled(t, "RunAutomation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		gw := &MockGateway{}
		gw.On("RunAutomation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: quota exceeded", generation.ErrTransport)).Once()
		svc, err := NewAutomationService(newTestComposer(t), gw, newTestLogger())
		require.NoError(t, err)

		result, err := svc.Run(context.Background(), "text", "")

		assert.ErrorIs(t, err, generation.ErrTransport)
		assert.Nil(t, result)
		gw.AssertNumberOfCalls(t, "RunAutomation", 1)
	})
}

func TestAutomationService_Tasks(t *testing.T) {
	t.Parallel()
	svc, err := NewAutomationService(newTestComposer(t), &MockGateway{}, newTestLogger())
	require.NoError(t, err)

	tasks := svc.Tasks()
	require.Len(t, tasks, 5)
	assert.Equal(t, domain.DefaultAutomationTask, tasks[0])

	tasks[0] = "mutated"
	assert.Equal(t, domain.DefaultAutomationTask, svc.Tasks()[0], "callers get a copy")
}
