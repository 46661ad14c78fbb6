package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gemini-studio/internal/config"
	"github.com/phrazzld/gemini-studio/internal/generation"
	"github.com/phrazzld/gemini-studio/internal/platform/gemini"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"github.com/phrazzld/gemini-studio/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	gateway generation.Gateway

	// Panel services
	dashboardService  service.DashboardService
	automationService service.AutomationService
	chatService       service.ChatService
}

// newApplication creates a new application instance with all dependencies initialized.
// The Gemini gateway is built from cfg.LLM; a missing API key does not stop
// the server, every model call then reports a configuration error.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gateway, err := gemini.NewGateway(ctx, logger.With("component", "gemini_gateway"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini gateway: %w", err)
	}

	return newApplicationWithGateway(cfg, logger, gateway)
}

// newApplicationWithGateway wires the panel services around an existing gateway.
func newApplicationWithGateway(
	cfg *config.Config,
	logger *slog.Logger,
	gateway generation.Gateway,
) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		gateway: gateway,
	}

	composer, err := prompt.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	app.dashboardService, err = service.NewDashboardService(composer, gateway, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	app.automationService, err = service.NewAutomationService(composer, gateway, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create automation service: %w", err)
	}

	app.chatService, err = service.NewChatService(composer, gateway, logger, cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// Chat sessions live only in memory and are dropped with the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
