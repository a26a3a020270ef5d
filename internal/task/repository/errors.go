package repository

import "errors"

// ErrNotFound is returned when the backend has no row for the given ID.
var ErrNotFound = errors.New("task row not found")
