package service

import (
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/phrazzld/gemini-studio/internal/prompt"
	"google.golang.org/genai"
)

// PromptComposer defines the prompt construction used by the services.
// *prompt.Composer satisfies it.
type PromptComposer interface {
	// ComposeDashboardPrompt builds a dashboard instruction and its response schema
	ComposeDashboardPrompt(input string, isFileData bool) (string, *genai.Schema, error)

	// ComposeAutomationPrompt builds the prompt and system instruction for a task
	ComposeAutomationPrompt(input, taskLabel string) (prompt.AutomationRequest, error)

	// ComposeChatRequest reshapes history plus a new message into request contents
	ComposeChatRequest(history []domain.ChatMessage, newMessage string) []*genai.Content
}

var _ PromptComposer = (*prompt.Composer)(nil)
