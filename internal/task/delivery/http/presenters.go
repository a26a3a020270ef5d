package http

import (
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text                string            `json:"text" binding:"required"`
	ProjectID           string            `json:"projectId"`
	Parsed              *model.ParsedTask `json:"parsed"`
	SelectedSuggestions []int             `json:"selectedSuggestions"`
}

func (r createReq) toComposeInput() task.ComposeInput {
	return task.ComposeInput{
		RawText:             r.Text,
		ProjectID:           r.ProjectID,
		Parsed:              r.Parsed,
		SelectedSuggestions: r.SelectedSuggestions,
	}
}

type updateReq struct {
	ID        string  `json:"-"` // populated from URI param
	Task      *string `json:"task"`
	Date      *string `json:"date"`
	Priority  *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:        r.ID,
		Task:      r.Task,
		Date:      r.Date,
		Completed: r.Completed,
	}
	if r.Priority != nil {
		p := model.NormalizePriority(*r.Priority)
		in.Priority = &p
	}
	return in
}

type listReq struct {
	ProjectID string `form:"projectId"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		ProjectID: r.ProjectID,
		Completed: r.Completed,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string              `json:"id"`
	ProjectID    string              `json:"projectId,omitempty"`
	ParentTaskID string              `json:"parentTaskId,omitempty"`
	Task         string              `json:"task"`
	Date         string              `json:"date,omitempty"`
	Priority     string              `json:"priority"`
	Completed    bool                `json:"completed"`
	AIEnhanced   bool                `json:"aiEnhanced"`
	Metadata     model.DraftMetadata `json:"metadata,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		ParentTaskID: t.ParentTaskID,
		Task:         t.Task,
		Date:         t.Date,
		Priority:     string(t.Priority),
		Completed:    t.Completed,
		AIEnhanced:   t.AIEnhanced,
		Metadata:     t.Metadata,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type createResp struct {
	Task           taskResp   `json:"task"`
	Subtasks       []taskResp `json:"subtasks"`
	FailedSubtasks []string   `json:"failedSubtasks,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	subtasks := make([]taskResp, len(out.Subtasks))
	for i, st := range out.Subtasks {
		subtasks[i] = newTaskResp(st)
	}
	return createResp{
		Task:           newTaskResp(out.Task),
		Subtasks:       subtasks,
		FailedSubtasks: out.FailedSubtasks,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

type updateResp struct {
	Task taskResp `json:"task"`
}
