package task

import "smart-todo-backend/internal/model"

// ComposeInput is the raw material for draft composition.
type ComposeInput struct {
	RawText             string
	ProjectID           string
	Parsed              *model.ParsedTask // nil when no parse result is available
	SelectedSuggestions []int             // indices into Parsed.Suggestions
}

// ComposeOutput holds the composed drafts. Subtask drafts have no parent ID
// yet; it is filled in after the primary task is persisted.
type ComposeOutput struct {
	Draft    model.TaskDraft
	Subtasks []model.SubtaskDraft
}

// CreateInput is the input for persisting a composed task tree.
type CreateInput struct {
	Draft    model.TaskDraft
	Subtasks []model.SubtaskDraft
}

// CreateOutput reports what was persisted. FailedSubtasks lists the titles
// that could not be created.
type CreateOutput struct {
	Task           model.Task
	Subtasks       []model.Task
	FailedSubtasks []string
}

// UpdateInput is a partial task update. Nil fields are left untouched.
type UpdateInput struct {
	ID        string
	Task      *string
	Date      *string
	Priority  *model.Priority
	Completed *bool
}

// ListInput filters the task listing.
type ListInput struct {
	ProjectID string
	Completed *bool
	Limit     int
	Offset    int
}

// ListOutput is the task listing result.
type ListOutput struct {
	Tasks []model.Task
	Count int
}
