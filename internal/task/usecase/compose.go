package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
)

// subtaskNamespace scopes the deterministic idempotency keys. Composing the
// same subtask for the same user twice yields the same key, so a retried
// create cannot duplicate rows.
var subtaskNamespace = uuid.MustParse("9f2c1f60-3b7a-4a8e-9d11-5b6f24c0a7d3")

// Compose builds the primary draft and its subtask drafts. With a parse
// result the draft carries the extracted attributes and provenance metadata;
// without one it is a plain task from the raw text.
func (uc implUseCase) Compose(sc model.Scope, input task.ComposeInput) task.ComposeOutput {
	raw := strings.TrimSpace(input.RawText)

	draft := model.TaskDraft{
		Task:      raw,
		ProjectID: input.ProjectID,
		Priority:  model.PriorityMedium,
	}

	if input.Parsed != nil {
		parsed := input.Parsed
		if name := strings.TrimSpace(parsed.TaskName); name != "" {
			draft.Task = name
		}
		draft.Priority = model.NormalizePriority(string(parsed.Priority))
		draft.Date = uc.resolveDate(parsed.Date)
		draft.AIEnhanced = true
		draft.Metadata = model.DraftMetadata{
			OriginalInput: raw,
			AIParsed:      true,
		}
	}

	var subtasks []model.SubtaskDraft
	if input.Parsed != nil {
		for _, idx := range input.SelectedSuggestions {
			if idx < 0 || idx >= len(input.Parsed.Suggestions) {
				continue
			}
			title := strings.TrimSpace(input.Parsed.Suggestions[idx])
			if title == "" {
				continue
			}
			// ParentTaskID is filled in after the primary task is persisted.
			subtasks = append(subtasks, model.SubtaskDraft{
				Task:     title,
				Priority: model.PriorityLow,
				Metadata: model.DraftMetadata{
					ParentTask:  draft.Task,
					Type:        "subtask",
					AIGenerated: true,
				},
				IdempotencyKey: subtaskKey(sc.UserID, draft.Task, title),
			})
		}
	}

	return task.ComposeOutput{Draft: draft, Subtasks: subtasks}
}

// resolveDate turns a date phrase into an absolute YYYY-MM-DD string. Phrases
// the resolver does not understand are kept as-is.
func (uc implUseCase) resolveDate(phrase string) string {
	if phrase == "" || uc.dateMath == nil {
		return phrase
	}
	resolved, err := uc.dateMath.Parse(phrase, time.Now())
	if err != nil {
		return phrase
	}
	return resolved.Format("2006-01-02")
}

func subtaskKey(userID, parent, title string) string {
	return uuid.NewSHA1(subtaskNamespace, []byte(userID+"|"+parent+"|"+title)).String()
}
