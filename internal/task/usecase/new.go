package usecase

import (
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
	"smart-todo-backend/pkg/datemath"
	pkgLog "smart-todo-backend/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	dateMath *datemath.Parser
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository, dateMath *datemath.Parser) task.UseCase {
	return implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
	}
}
