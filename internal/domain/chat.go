package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

// Chat roles, matching the provider's role names.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// ChatMessage is one turn of a conversation. Messages are appended to a
// session and never mutated afterwards.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// NewChatMessage creates a message with a fresh ID. The timestamp is Unix
// milliseconds, bumped past after so that messages in one session stay
// strictly ordered even when created within the same millisecond.
func NewChatMessage(role Role, content string, after int64) (ChatMessage, error) {
	if !role.Valid() {
		return ChatMessage{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	ts := time.Now().UnixMilli()
	if ts <= after {
		ts = after + 1
	}

	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}, nil
}

// Messages shown in the chat playground that are not produced by the model.
const (
	ChatGreeting = "Hello! I'm ready to help you experiment with Gemini. What's on your mind?"
	ChatApology  = "I encountered an error connecting to the API. Please check your network or API key."
)
