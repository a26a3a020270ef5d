package usecase

import (
	"context"
	"io"

	"smart-todo-backend/internal/chat"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/modelclient"
)

const fallbackResponse = "The AI assistant is not configured right now. " +
	"Your tasks still work normally, and smart suggestions will return once the assistant is back."

// Relay forwards the conversation to the model endpoint. A missing endpoint or
// a failed call both degrade to the canned fallback instead of an error, so
// the chat surface stays usable.
func (uc implUseCase) Relay(ctx context.Context, sc model.Scope, input chat.RelayInput) (chat.RelayOutput, error) {
	if len(input.Messages) == 0 {
		return chat.RelayOutput{}, chat.ErrNoMessages
	}

	if uc.model == nil {
		return chat.RelayOutput{Response: fallbackResponse, Fallback: true}, nil
	}

	messages := make([]modelclient.ChatMessage, 0, len(input.Messages))
	for _, msg := range input.Messages {
		messages = append(messages, modelclient.ChatMessage{Role: msg.Role, Content: msg.Content})
	}

	// The deadline caps the whole stream; Close releases it early.
	streamCtx, cancel := context.WithTimeout(ctx, uc.timeout)

	stream, err := uc.model.ChatStream(streamCtx, modelclient.ChatRequest{
		Messages:    messages,
		TaskContext: input.TaskContext,
	})
	if err != nil {
		cancel()
		uc.l.Warnf(ctx, "chat.usecase.Relay.ChatStream: %v, serving fallback", err)
		return chat.RelayOutput{Response: fallbackResponse, Fallback: true}, nil
	}

	return chat.RelayOutput{Stream: cancelReadCloser{ReadCloser: stream, cancel: cancel}}, nil
}

type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelReadCloser) Close() error {
	c.cancel()
	return c.ReadCloser.Close()
}
