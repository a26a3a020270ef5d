package modelclient

import "encoding/json"

// ParseRequest is the body for POST <url>/parse.
type ParseRequest struct {
	UserInput string                 `json:"userInput"`
	Feature   string                 `json:"feature"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// ParseResponse is the model endpoint's structured reply. Which optional field
// is populated depends on the feature.
type ParseResponse struct {
	Success     bool            `json:"success"`
	Parsed      json.RawMessage `json:"parsed,omitempty"`
	Breakdown   json.RawMessage `json:"breakdown,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Error       string          `json:"error,omitempty"`
	AIPowered   bool            `json:"aiPowered,omitempty"`
}

// ParsedPayload is the wire shape of a model-extracted task. Every field is
// optional on the wire; the caller normalizes absences to defaults.
type ParsedPayload struct {
	TaskName          string   `json:"taskName"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	Priority          string   `json:"priority"`
	People            []string `json:"people"`
	Category          string   `json:"category"`
	Tags              []string `json:"tags"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Suggestions       []string `json:"suggestions"`
	Confidence        *float64 `json:"confidence"`
}

// ChatMessage is one turn of the conversation relayed to the model.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body for POST <url>/chat.
type ChatRequest struct {
	Messages    []ChatMessage          `json:"messages"`
	TaskContext map[string]interface{} `json:"taskContext,omitempty"`
}
