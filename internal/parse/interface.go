package parse

import (
	"context"

	"smart-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the parse domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns free-text task input into a structured ParsedTask. It never
	// fails for the smart-parse feature: model errors degrade to heuristics.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
}
