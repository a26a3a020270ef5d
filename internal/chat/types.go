package chat

import "io"

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}

// RelayInput is a conversation plus optional task context for grounding.
type RelayInput struct {
	Messages    []Message
	TaskContext map[string]interface{}
}

// RelayOutput carries either a live reply stream or a fallback response.
// Exactly one of Stream and Response is set; Fallback reports which.
type RelayOutput struct {
	Stream   io.ReadCloser
	Response string
	Fallback bool
}
