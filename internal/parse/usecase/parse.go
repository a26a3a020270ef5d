package usecase

import (
	"context"
	"strings"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
)

// Parse turns free text into a structured task. Resolution order: quick-match
// table, response cache, model endpoint, heuristics. For smart-parse a model
// failure degrades silently to the heuristic result; other features surface
// the error because the heuristic cannot produce their output shape.
func (uc implUseCase) Parse(ctx context.Context, sc model.Scope, input parse.ParseInput) (parse.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return parse.ParseOutput{}, parse.ErrEmptyInput
	}
	if !input.Feature.Valid() {
		return parse.ParseOutput{}, parse.ErrUnknownFeature
	}

	if input.Feature == model.FeatureSmartParse {
		if parsed, ok := uc.lookupQuickMatch(input.Text); ok {
			return parse.ParseOutput{Parsed: parsed}, nil
		}
	}

	if parsed, ok := uc.cacheGet(input.Feature, input.Text); ok {
		return parse.ParseOutput{Parsed: parsed}, nil
	}

	if uc.model == nil {
		return uc.heuristicFallback(ctx, input)
	}

	timeout := input.Timeout
	if timeout <= 0 {
		timeout = uc.timeout
	}

	parsed, err := uc.modelParseWithRetry(ctx, input, timeout)
	if err != nil {
		if input.Feature == model.FeatureSmartParse {
			uc.l.Warnf(ctx, "parse.usecase.Parse.modelParse: %v, falling back to heuristics", err)
			return uc.heuristicFallback(ctx, input)
		}
		uc.l.Errorf(ctx, "parse.usecase.Parse.modelParse: %v", err)
		return parse.ParseOutput{}, err
	}

	uc.cachePut(input.Feature, input.Text, parsed)
	return parse.ParseOutput{Parsed: parsed}, nil
}

func (uc implUseCase) heuristicFallback(ctx context.Context, input parse.ParseInput) (parse.ParseOutput, error) {
	parsed := heuristicParse(input.Text)
	uc.cachePut(input.Feature, input.Text, parsed)
	return parse.ParseOutput{Parsed: parsed}, nil
}
