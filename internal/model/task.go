package model

import "time"

// Task is a task record as stored in the hosted backend. ParentTaskID links a
// subtask row to its primary task.
type Task struct {
	ID           string
	UserID       string
	ProjectID    string
	ParentTaskID string
	Task         string
	Date         string
	Priority     Priority
	Completed    bool
	AIEnhanced   bool
	Metadata     DraftMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DraftMetadata carries provenance for AI-assisted tasks. ParentTask holds the
// primary task's text for display; the resolved identifier lives on the row.
type DraftMetadata struct {
	OriginalInput string `json:"originalInput,omitempty"`
	AIParsed      bool   `json:"aiParsed,omitempty"`
	ParentTask    string `json:"parentTask,omitempty"`
	Type          string `json:"type,omitempty"` // "subtask" for child drafts
	AIGenerated   bool   `json:"aiGenerated,omitempty"`
}

// TaskDraft is a task-creation request composed from a parse result (or raw input).
type TaskDraft struct {
	Task       string
	ProjectID  string
	Date       string
	Priority   Priority
	AIEnhanced bool
	Metadata   DraftMetadata
}

// SubtaskDraft is a dependent creation request. ParentTaskID stays empty until
// the primary task has been persisted and its identifier is known.
type SubtaskDraft struct {
	ParentTaskID   string
	Task           string
	Priority       Priority
	Metadata       DraftMetadata
	IdempotencyKey string
}
