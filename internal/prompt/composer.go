package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/phrazzld/gemini-studio/internal/domain"
	"google.golang.org/genai"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	// MaxFileDataChars is the number of characters of uploaded file content
	// embedded in a dashboard prompt.
	MaxFileDataChars = 200_000

	// TruncationMarker is appended to file content cut at MaxFileDataChars.
	TruncationMarker = "\n...(truncated)"

	// AutomationTemperature is the sampling temperature for automation tasks.
	AutomationTemperature float32 = 0.7
)

// ErrEmptyInput is returned when the user-supplied input is blank.
var ErrEmptyInput = errors.New("input cannot be empty")

// AutomationRequest is everything the gateway needs for one automation call.
type AutomationRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

// Composer renders prompts from the embedded templates.
type Composer struct {
	templates *template.Template
}

// New parses the embedded prompt templates.
func New() (*Composer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	return &Composer{templates: tmpl}, nil
}

// ComposeDashboardPrompt builds the dashboard instruction and its response
// schema. When isFileData is true input is raw uploaded file content and is
// truncated to MaxFileDataChars; otherwise input is a topic and the model is
// asked to invent illustrative data.
func (c *Composer) ComposeDashboardPrompt(input string, isFileData bool) (string, *genai.Schema, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil, ErrEmptyInput
	}

	var (
		name string
		data = map[string]any{
			"MetricCount": domain.DashboardMetricCount,
			"ChartCount":  domain.DashboardChartCount,
		}
	)
	if isFileData {
		name = "dashboard_file.tmpl"
		data["Data"] = TruncateFileData(input)
	} else {
		name = "dashboard_topic.tmpl"
		data["Topic"] = input
	}

	text, err := c.render(name, data)
	if err != nil {
		return "", nil, err
	}
	return text, DashboardSchema(), nil
}

// ComposeAutomationPrompt builds the prompt, system instruction and
// temperature for an automation task. A blank taskLabel selects
// domain.DefaultAutomationTask.
func (c *Composer) ComposeAutomationPrompt(input, taskLabel string) (AutomationRequest, error) {
	if strings.TrimSpace(input) == "" {
		return AutomationRequest{}, ErrEmptyInput
	}
	taskLabel = strings.TrimSpace(taskLabel)
	if taskLabel == "" {
		taskLabel = domain.DefaultAutomationTask
	}

	prompt, err := c.render("automation_input.tmpl", map[string]any{"Input": input})
	if err != nil {
		return AutomationRequest{}, err
	}
	system, err := c.render("automation_system.tmpl", map[string]any{"Task": taskLabel})
	if err != nil {
		return AutomationRequest{}, err
	}

	return AutomationRequest{
		Prompt:            strings.TrimSuffix(prompt, "\n"),
		SystemInstruction: system,
		Temperature:       AutomationTemperature,
	}, nil
}

// ComposeChatRequest reshapes the prior conversation plus newMessage into the
// ordered contents of a multi-turn request. The whole history is sent on
// every turn.
func (c *Composer) ComposeChatRequest(history []domain.ChatMessage, newMessage string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, genai.NewContentFromText(msg.Content, providerRole(msg.Role)))
	}
	return append(contents, genai.NewContentFromText(newMessage, genai.RoleUser))
}

// TruncateFileData keeps the first MaxFileDataChars characters of data and
// appends TruncationMarker when anything was cut.
func TruncateFileData(data string) string {
	if utf8.RuneCountInString(data) <= MaxFileDataChars {
		return data
	}

	count := 0
	for i := range data {
		if count == MaxFileDataChars {
			return data[:i] + TruncationMarker
		}
		count++
	}
	return data
}

func (c *Composer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return buf.String(), nil
}

func providerRole(r domain.Role) genai.Role {
	if r == domain.RoleModel {
		return genai.RoleModel
	}
	return genai.RoleUser
}
