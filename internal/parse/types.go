package parse

import (
	"time"

	"smart-todo-backend/internal/model"
)

// ParseInput is one parse request. Text is immutable once submitted.
type ParseInput struct {
	Text    string
	Feature model.Feature
	Context map[string]interface{}
	Timeout time.Duration // zero means the configured default
}

// ParseOutput carries the structured result.
type ParseOutput struct {
	Parsed model.ParsedTask
}
