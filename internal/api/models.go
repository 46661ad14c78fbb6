package api

import "github.com/phrazzld/gemini-studio/internal/domain"

// Common request/response structures

// DashboardTopicRequest defines the payload for topic-based dashboard generation.
type DashboardTopicRequest struct {
	Topic string `json:"topic" validate:"required,max=2000"`
}

// AutomationRequest defines the payload for running an automation task.
type AutomationRequest struct {
	Input string `json:"input" validate:"required"`

	// Task is a catalog label or a free-form task; empty selects the default
	Task string `json:"task" validate:"max=500"`
}

// AutomationTasksResponse lists the predefined automation tasks.
type AutomationTasksResponse struct {
	Tasks   []string `json:"tasks"`
	Default string   `json:"default"`
}

// ChatMessageRequest defines the payload for sending a chat message.
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// SamplesResponse lists example inputs for each panel.
type SamplesResponse struct {
	domain.SamplePrompts
	AutomationTasks []string `json:"automation_tasks"`
}
