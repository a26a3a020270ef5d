package task

import "errors"

var (
	ErrEmptyTask    = errors.New("task text is empty")
	ErrTaskNotFound = errors.New("task not found")
)
