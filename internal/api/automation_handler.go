package api

import (
	"net/http"

	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/service"
)

// AutomationHandler handles automation lab requests
type AutomationHandler struct {
	automationService service.AutomationService
}

// NewAutomationHandler creates a new AutomationHandler
func NewAutomationHandler(automationService service.AutomationService) *AutomationHandler {
	return &AutomationHandler{automationService: automationService}
}

// ListTasks handles GET /api/automations/tasks requests
func (h *AutomationHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, AutomationTasksResponse{
		Tasks:   h.automationService.Tasks(),
		Default: domain.DefaultAutomationTask,
	})
}

// Run handles POST /api/automations requests
func (h *AutomationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req AutomationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.automationService.Run(r.Context(), req.Input, req.Task)
	if err != nil {
		HandleAPIError(w, r, err, MsgAutomationFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
