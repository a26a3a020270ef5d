package usecase

import (
	"context"
	"errors"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
)

func (uc implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, input.ID, repository.UpdateTaskOptions{
		Task:      input.Task,
		Date:      input.Date,
		Priority:  input.Priority,
		Completed: input.Completed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update.UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete.DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:    sc.UserID,
		ProjectID: input.ProjectID,
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List.ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
