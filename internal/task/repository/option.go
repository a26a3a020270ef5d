package repository

import "smart-todo-backend/internal/model"

// CreateTaskOptions defines a single task insert. ParentTaskID is set only for
// subtask rows.
type CreateTaskOptions struct {
	UserID         string
	ProjectID      string
	ParentTaskID   string
	Task           string
	Date           string
	Priority       model.Priority
	AIEnhanced     bool
	Metadata       model.DraftMetadata
	IdempotencyKey string
}

// UpdateTaskOptions is a partial update. Nil fields are not sent.
type UpdateTaskOptions struct {
	Task      *string
	Date      *string
	Priority  *model.Priority
	Completed *bool
}

// ListTasksOptions defines listing filters.
type ListTasksOptions struct {
	UserID    string
	ProjectID string
	Completed *bool
	Limit     int
	Offset    int
}
