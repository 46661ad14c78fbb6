package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
)

// AutomationService provides automation task operations
type AutomationService interface {
	// Run executes taskLabel over input and returns the model's markdown output.
	// A blank taskLabel selects domain.DefaultAutomationTask.
	Run(ctx context.Context, input, taskLabel string) (*domain.AutomationResult, error)

	// Tasks lists the predefined task labels
	Tasks() []string
}

// automationServiceImpl implements the AutomationService interface
type automationServiceImpl struct {
	composer PromptComposer
	gateway  generation.Gateway
	logger   *slog.Logger
}

// NewAutomationService creates a new AutomationService
// It returns an error if any of the required dependencies are nil.
func NewAutomationService(
	composer PromptComposer,
	gateway generation.Gateway,
	logger *slog.Logger,
) (AutomationService, error) {
	if composer == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "composer cannot be nil"}
	}
	if gateway == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "gateway cannot be nil"}
	}
	if logger == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	return &automationServiceImpl{
		composer: composer,
		gateway:  gateway,
		logger:   logger.With("component", "automation_service"),
	}, nil
}

// Run implements AutomationService.Run
func (s *automationServiceImpl) Run(
	ctx context.Context,
	input, taskLabel string,
) (*domain.AutomationResult, error) {
	req, err := s.composer.ComposeAutomationPrompt(input, taskLabel)
	if err != nil {
		return nil, NewServiceError("run_automation", "failed to compose prompt", err)
	}
	task := resolvedTask(taskLabel)

	output, err := s.gateway.RunAutomation(ctx, req.Prompt, req.SystemInstruction, req.Temperature)
	if err != nil {
		s.logger.ErrorContext(ctx, "automation task failed",
			"task", task,
			"error", err)
		return nil, NewServiceError("run_automation", "failed to execute task", err)
	}

	s.logger.InfoContext(ctx, "automation task completed",
		"task", task,
		"output_length", len(output))
	return &domain.AutomationResult{Task: task, Output: output}, nil
}

// Tasks implements AutomationService.Tasks
func (s *automationServiceImpl) Tasks() []string {
	return slices.Clone(domain.AutomationTasks)
}

func resolvedTask(label string) string {
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	return domain.DefaultAutomationTask
}
