package service

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/generation"
)

// DashboardService provides dashboard generation operations
type DashboardService interface {
	// GenerateFromTopic asks the model to invent illustrative data for topic
	GenerateFromTopic(ctx context.Context, topic string) (*domain.DashboardSpec, error)

	// GenerateFromFile asks the model to analyze uploaded text content.
	// The filename extension is checked before anything is sent.
	GenerateFromFile(ctx context.Context, filename string, content []byte) (*domain.DashboardSpec, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	composer PromptComposer
	gateway  generation.Gateway
	logger   *slog.Logger
}

// NewDashboardService creates a new DashboardService
// It returns an error if any of the required dependencies are nil.
func NewDashboardService(
	composer PromptComposer,
	gateway generation.Gateway,
	logger *slog.Logger,
) (DashboardService, error) {
	if composer == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "composer cannot be nil"}
	}
	if gateway == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "gateway cannot be nil"}
	}
	if logger == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	return &dashboardServiceImpl{
		composer: composer,
		gateway:  gateway,
		logger:   logger.With("component", "dashboard_service"),
	}, nil
}

// GenerateFromTopic implements DashboardService.GenerateFromTopic
func (s *dashboardServiceImpl) GenerateFromTopic(
	ctx context.Context,
	topic string,
) (*domain.DashboardSpec, error) {
	return s.generate(ctx, "generate_dashboard_topic", topic, false)
}

// GenerateFromFile implements DashboardService.GenerateFromFile
func (s *dashboardServiceImpl) GenerateFromFile(
	ctx context.Context,
	filename string,
	content []byte,
) (*domain.DashboardSpec, error) {
	if err := domain.ValidateUploadFilename(filename); err != nil {
		s.logger.WarnContext(ctx, "rejected upload with unsupported extension",
			"filename", filename)
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, domain.NewValidationError("file", "must contain UTF-8 text", domain.ErrValidation)
	}

	s.logger.DebugContext(ctx, "generating dashboard from file",
		"filename", filename,
		"size_bytes", len(content))
	return s.generate(ctx, "generate_dashboard_file", string(content), true)
}

func (s *dashboardServiceImpl) generate(
	ctx context.Context,
	operation, input string,
	isFileData bool,
) (*domain.DashboardSpec, error) {
	text, schema, err := s.composer.ComposeDashboardPrompt(input, isFileData)
	if err != nil {
		return nil, NewServiceError(operation, "failed to compose prompt", err)
	}

	spec, err := s.gateway.GenerateDashboard(ctx, text, schema)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, generation.ErrConfiguration) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "dashboard generation failed",
			"operation", operation,
			"error", err)
		return nil, NewServiceError(operation, "failed to generate dashboard", err)
	}

	s.logger.InfoContext(ctx, "dashboard generated",
		"operation", operation,
		"title", spec.Title)
	return spec, nil
}
