package usecase

import (
	"context"
	"strings"
	"sync"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
)

// Create persists the primary task first and only then its subtasks, so every
// subtask row carries a valid parent ID. Subtasks are created concurrently and
// one failing sibling never blocks the others.
func (uc implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Draft.Task) == "" {
		return task.CreateOutput{}, task.ErrEmptyTask
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:     sc.UserID,
		ProjectID:  input.Draft.ProjectID,
		Task:       input.Draft.Task,
		Date:       input.Draft.Date,
		Priority:   input.Draft.Priority,
		AIEnhanced: input.Draft.AIEnhanced,
		Metadata:   input.Draft.Metadata,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create.CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	out := task.CreateOutput{Task: created}
	if len(input.Subtasks) == 0 {
		return out, nil
	}

	if created.ID == "" {
		// Without a parent ID the subtasks cannot reference the task. Dropping
		// them beats inventing a parent.
		uc.l.Warnf(ctx, "task.usecase.Create: created task has no ID, skipping %d subtasks", len(input.Subtasks))
		return out, nil
	}

	type subtaskResult struct {
		task model.Task
		err  error
	}
	results := make([]subtaskResult, len(input.Subtasks))

	var wg sync.WaitGroup
	for i, sub := range input.Subtasks {
		wg.Add(1)
		go func(i int, sub model.SubtaskDraft) {
			defer wg.Done()
			sub.ParentTaskID = created.ID
			st, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
				UserID:         sc.UserID,
				ProjectID:      input.Draft.ProjectID,
				ParentTaskID:   sub.ParentTaskID,
				Task:           sub.Task,
				Priority:       sub.Priority,
				Metadata:       sub.Metadata,
				IdempotencyKey: sub.IdempotencyKey,
			})
			results[i] = subtaskResult{task: st, err: err}
		}(i, sub)
	}
	wg.Wait()

	for i, res := range results {
		if res.err != nil {
			uc.l.Warnf(ctx, "task.usecase.Create: subtask %q failed: %v", input.Subtasks[i].Task, res.err)
			out.FailedSubtasks = append(out.FailedSubtasks, input.Subtasks[i].Task)
			continue
		}
		out.Subtasks = append(out.Subtasks, res.task)
	}
	return out, nil
}
