package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task/repository"
	pkgLog "smart-todo-backend/pkg/log"
)

// implRepository implements repository.TaskRepository on top of Supabase.
type implRepository struct {
	l      pkgLog.Logger
	client *Client
}

// New creates the Supabase-backed task repository.
func New(l pkgLog.Logger, client *Client) repository.TaskRepository {
	return implRepository{l: l, client: client}
}

// taskRow is the wire shape of one row in the tasks table.
type taskRow struct {
	ID             string               `json:"id,omitempty"`
	UserID         string               `json:"user_id"`
	ProjectID      string               `json:"project_id,omitempty"`
	ParentTaskID   string               `json:"parent_task_id,omitempty"`
	Task           string               `json:"task"`
	Date           string               `json:"date,omitempty"`
	Priority       string               `json:"priority"`
	Completed      bool                 `json:"completed"`
	AIEnhanced     bool                 `json:"ai_enhanced"`
	Metadata       *model.DraftMetadata `json:"metadata,omitempty"`
	IdempotencyKey string               `json:"idempotency_key,omitempty"`
	CreatedAt      string               `json:"created_at,omitempty"`
	UpdatedAt      string               `json:"updated_at,omitempty"`
}

func (r implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	row := taskRow{
		UserID:         opt.UserID,
		ProjectID:      opt.ProjectID,
		ParentTaskID:   opt.ParentTaskID,
		Task:           opt.Task,
		Date:           opt.Date,
		Priority:       string(model.NormalizePriority(string(opt.Priority))),
		AIEnhanced:     opt.AIEnhanced,
		IdempotencyKey: opt.IdempotencyKey,
	}
	if opt.Metadata != (model.DraftMetadata{}) {
		meta := opt.Metadata
		row.Metadata = &meta
	}

	var created []taskRow
	if err := r.client.do(ctx, http.MethodPost, "", []taskRow{row}, &created); err != nil {
		r.l.Errorf(ctx, "task.repository.supabase.CreateTask: %v", err)
		return model.Task{}, err
	}
	if len(created) == 0 {
		return model.Task{}, fmt.Errorf("supabase insert returned no rows")
	}
	return toTask(created[0]), nil
}

func (r implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	patch := map[string]interface{}{}
	if opt.Task != nil {
		patch["task"] = *opt.Task
	}
	if opt.Date != nil {
		patch["date"] = *opt.Date
	}
	if opt.Priority != nil {
		patch["priority"] = string(*opt.Priority)
	}
	if opt.Completed != nil {
		patch["completed"] = *opt.Completed
	}
	patch["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	var updated []taskRow
	query := "?id=eq." + url.QueryEscape(id)
	if err := r.client.do(ctx, http.MethodPatch, query, patch, &updated); err != nil {
		r.l.Errorf(ctx, "task.repository.supabase.UpdateTask: %v", err)
		return model.Task{}, err
	}
	if len(updated) == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return toTask(updated[0]), nil
}

func (r implRepository) DeleteTask(ctx context.Context, id string) error {
	query := "?id=eq." + url.QueryEscape(id)
	if err := r.client.do(ctx, http.MethodDelete, query, nil, nil); err != nil {
		r.l.Errorf(ctx, "task.repository.supabase.DeleteTask: %v", err)
		return err
	}
	return nil
}

func (r implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	params := url.Values{}
	params.Set("user_id", "eq."+opt.UserID)
	params.Set("order", "created_at.desc")
	if opt.ProjectID != "" {
		params.Set("project_id", "eq."+opt.ProjectID)
	}
	if opt.Completed != nil {
		params.Set("completed", "eq."+strconv.FormatBool(*opt.Completed))
	}
	if opt.Limit > 0 {
		params.Set("limit", strconv.Itoa(opt.Limit))
	}
	if opt.Offset > 0 {
		params.Set("offset", strconv.Itoa(opt.Offset))
	}

	var rows []taskRow
	if err := r.client.do(ctx, http.MethodGet, "?"+params.Encode(), nil, &rows); err != nil {
		r.l.Errorf(ctx, "task.repository.supabase.ListTasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, toTask(row))
	}
	return tasks, nil
}

func toTask(row taskRow) model.Task {
	t := model.Task{
		ID:           row.ID,
		UserID:       row.UserID,
		ProjectID:    row.ProjectID,
		ParentTaskID: row.ParentTaskID,
		Task:         row.Task,
		Date:         row.Date,
		Priority:     model.NormalizePriority(row.Priority),
		Completed:    row.Completed,
		AIEnhanced:   row.AIEnhanced,
	}
	if row.Metadata != nil {
		t.Metadata = *row.Metadata
	}
	if ts, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
		t.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, row.UpdatedAt); err == nil {
		t.UpdatedAt = ts
	}
	return t
}
