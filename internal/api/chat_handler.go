package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gemini-studio/internal/api/shared"
	"github.com/phrazzld/gemini-studio/internal/service"
)

// SessionIDParam is the route parameter naming a chat session.
const SessionIDParam = "id"

// ChatHandler handles chat playground requests
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// CreateSession handles POST /api/chat/sessions requests
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.chatService.CreateSession(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create chat session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sess)
}

// GetSession handles GET /api/chat/sessions/{id} requests
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.chatService.GetSession(r.Context(), chi.URLParam(r, SessionIDParam))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sess)
}

// SendMessage handles POST /api/chat/sessions/{id}/messages requests.
// Model failures are reported in the conversation, so a reachable session
// always answers 200.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reply, err := h.chatService.SendMessage(r.Context(), chi.URLParam(r, SessionIDParam), req.Message)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reply)
}
