package usecase

import (
	"strings"

	"smart-todo-backend/internal/model"
)

// quickMatch pairs a literal input prefix with partial default attributes.
// Matches answer instantly without touching the cache or the model endpoint.
type quickMatch struct {
	Prefix   string
	Category string
	Priority model.Priority
	Tags     []string
	Duration string
}

const quickMatchConfidence = 0.9

// defaultQuickMatches covers the openers users type most often. Order matters:
// the first matching prefix wins.
func defaultQuickMatches() []quickMatch {
	return []quickMatch{
		{Prefix: "buy ", Category: "shopping", Priority: model.PriorityMedium, Tags: []string{"shopping"}, Duration: "30 minutes"},
		{Prefix: "call ", Category: "personal", Priority: model.PriorityMedium, Tags: []string{"meeting"}, Duration: "15 minutes"},
		{Prefix: "email ", Category: "work", Priority: model.PriorityMedium, Tags: []string{"email"}, Duration: "15 minutes"},
		{Prefix: "meeting ", Category: "work", Priority: model.PriorityMedium, Tags: []string{"meeting"}, Duration: "1 hour"},
		{Prefix: "pay ", Category: "finance", Priority: model.PriorityHigh, Tags: []string{}, Duration: "15 minutes"},
		{Prefix: "clean ", Category: "personal", Priority: model.PriorityLow, Tags: []string{}, Duration: "1 hour"},
	}
}

// lookupQuickMatch returns an instant result when the input starts with one of
// the known prefixes. The prefix is stripped to form the task name and the
// bucket defaults are merged with the heuristic suggestion generator. The bool
// reports whether a match was found.
func (uc implUseCase) lookupQuickMatch(text string) (model.ParsedTask, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, match := range uc.quickMatches {
		if !strings.HasPrefix(lower, match.Prefix) {
			continue
		}

		name := strings.TrimSpace(trimmed[len(match.Prefix):])
		if name == "" {
			name = trimmed
		}

		return model.ParsedTask{
			TaskName:          name,
			Priority:          match.Priority,
			Category:          match.Category,
			People:            []string{},
			Tags:              append([]string{}, match.Tags...),
			EstimatedDuration: match.Duration,
			Suggestions:       suggestFor(lower, match.Category),
			Confidence:        quickMatchConfidence,
			FastResponse:      true,
		}, true
	}

	return model.ParsedTask{}, false
}
