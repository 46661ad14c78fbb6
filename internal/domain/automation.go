package domain

// AutomationResult is the markdown produced by an automation task. No
// structure is imposed on Output.
type AutomationResult struct {
	Task   string `json:"task"`
	Output string `json:"output"`
}

// DefaultAutomationTask is used when a caller does not pick a task.
const DefaultAutomationTask = "Summarize and Extract Action Items"

// AutomationTasks is the catalog of predefined agent behaviours. Callers may
// also pass a free-form task label.
var AutomationTasks = []string{
	DefaultAutomationTask,
	"Translate to Spanish and French",
	"Analyze Sentiment and Tone",
	"Convert Unstructured Data to JSON",
	"Proofread and Improve Grammar",
}

// SamplePrompts holds the example inputs offered by each panel.
type SamplePrompts struct {
	Dashboard  []string `json:"dashboard"`
	Automation []string `json:"automation"`
}

// DefaultSamplePrompts returns a fresh copy of the built-in examples.
func DefaultSamplePrompts() SamplePrompts {
	return SamplePrompts{
		Dashboard: []string{
			"Sales performance for a SaaS company in 2024",
			"Website traffic analysis for an e-commerce store",
			"Global renewable energy adoption trends",
			"Social media engagement metrics for a new brand launch",
		},
		Automation: []string{
			"Extract actionable tasks from this meeting notes text...",
			"Analyze the sentiment of this customer review and draft a reply...",
			"Convert this raw CSV data string into a clean JSON summary...",
		},
	}
}
