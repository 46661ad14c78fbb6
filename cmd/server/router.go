package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/gemini-studio/internal/api"
	apiMiddleware "github.com/phrazzld/gemini-studio/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	dashboardHandler := api.NewDashboardHandler(app.dashboardService, app.config.Upload.MaxBytes)
	automationHandler := api.NewAutomationHandler(app.automationService)
	chatHandler := api.NewChatHandler(app.chatService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/samples", api.ListSamples)

		// Dashboard generator
		r.Post("/dashboards", dashboardHandler.GenerateFromTopic)
		r.Post("/dashboards/upload", dashboardHandler.GenerateFromUpload)

		// Automation lab
		r.Get("/automations/tasks", automationHandler.ListTasks)
		r.Post("/automations", automationHandler.Run)

		// Chat playground
		r.Post("/chat/sessions", chatHandler.CreateSession)
		r.Get("/chat/sessions/{"+api.SessionIDParam+"}", chatHandler.GetSession)
		r.Post("/chat/sessions/{"+api.SessionIDParam+"}/messages", chatHandler.SendMessage)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
