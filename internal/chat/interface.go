package chat

import (
	"context"

	"smart-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Relay forwards a conversation to the model endpoint and returns the reply
	// stream. Without a configured endpoint it answers with a canned fallback.
	Relay(ctx context.Context, sc model.Scope, input RelayInput) (RelayOutput, error)
}
