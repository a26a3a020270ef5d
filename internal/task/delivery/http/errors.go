package http

import (
	"errors"

	"smart-todo-backend/internal/task"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTask):
		return pkgErrors.NewHTTPError(400, "task text is required")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "could not reach the task backend, please try again")
	}
}
