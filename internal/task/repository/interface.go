package repository

import (
	"context"

	"smart-todo-backend/internal/model"
)

// TaskRepository is the interface for task persistence in the hosted backend.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
