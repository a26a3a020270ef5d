package task

import (
	"context"

	"smart-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Compose builds a primary task draft and dependent subtask drafts from raw
	// input and an optional parse result. It never touches persistence.
	Compose(sc model.Scope, input ComposeInput) ComposeOutput

	// Create persists the primary task and then its subtasks. Subtask failures
	// are isolated per item and never roll back the primary task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Update applies a partial update to an existing task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// List returns the user's tasks.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
