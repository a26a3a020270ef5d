package model

// Feature tags the origin of a parse request. Each feature has its own prompt
// template and its own degradation rules.
type Feature string

const (
	FeatureSmartParse            Feature = "smart-parse"
	FeatureTaskBreakdown         Feature = "task-breakdown"
	FeatureSmartPrioritize       Feature = "smart-prioritize"
	FeatureContextualSuggestions Feature = "contextual-suggestions"
	FeatureSmartScheduling       Feature = "smart-scheduling"
)

// Valid reports whether f is one of the known features.
func (f Feature) Valid() bool {
	switch f {
	case FeatureSmartParse, FeatureTaskBreakdown, FeatureSmartPrioritize,
		FeatureContextualSuggestions, FeatureSmartScheduling:
		return true
	}
	return false
}

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NormalizePriority maps arbitrary input to a valid priority, defaulting to medium.
func NormalizePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	}
	return PriorityMedium
}

// ParsedTask is the structured result of parsing free-text task input.
// Instances are immutable: a new parse supersedes, never mutates, the previous one.
type ParsedTask struct {
	TaskName          string   `json:"taskName"`
	Date              string   `json:"date,omitempty"` // relative or literal form, e.g. "tomorrow", "15/3"
	Time              string   `json:"time,omitempty"` // e.g. "3pm", "morning"
	Priority          Priority `json:"priority"`
	People            []string `json:"people"`
	Category          string   `json:"category"`
	Tags              []string `json:"tags"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Suggestions       []string `json:"suggestions"`
	Confidence        float64  `json:"confidence"` // always within [0,1]
	ModelBacked       bool     `json:"modelBacked"`
	Cached            bool     `json:"cached"`
	FastResponse      bool     `json:"fastResponse,omitempty"`
}
