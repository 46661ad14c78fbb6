package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/service"
)

// UploadFormField is the multipart field holding the uploaded file.
const UploadFormField = "file"

// multipartOverhead is the allowance for multipart framing on top of the
// file size limit.
const multipartOverhead int64 = 64 << 10

// DashboardHandler handles dashboard generation requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	maxUploadBytes   int64
}

// NewDashboardHandler creates a new DashboardHandler. Uploaded files larger
// than maxUploadBytes are rejected.
func NewDashboardHandler(dashboardService service.DashboardService, maxUploadBytes int64) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		maxUploadBytes:   maxUploadBytes,
	}
}

// GenerateFromTopic handles POST /api/dashboards requests
func (h *DashboardHandler) GenerateFromTopic(w http.ResponseWriter, r *http.Request) {
	var req DashboardTopicRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	spec, err := h.dashboardService.GenerateFromTopic(r.Context(), req.Topic)
	if err != nil {
		HandleAPIError(w, r, err, MsgDashboardFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, spec)
}

// GenerateFromUpload handles POST /api/dashboards/upload requests
func (h *DashboardHandler) GenerateFromUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile(UploadFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			err = domain.NewValidationError(UploadFormField, "is required", domain.ErrValidation)
		}
		HandleAPIError(w, r, err, "Failed to read file")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.maxUploadBytes {
		HandleAPIError(w, r, &http.MaxBytesError{Limit: h.maxUploadBytes}, "")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("failed to read upload: %w", err), "Failed to read file")
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		HandleAPIError(w, r, &http.MaxBytesError{Limit: h.maxUploadBytes}, "")
		return
	}

	spec, err := h.dashboardService.GenerateFromFile(r.Context(), header.Filename, content)
	if err != nil {
		HandleAPIError(w, r, err, MsgDashboardFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, spec)
}
