package http

import (
	"errors"

	"smart-todo-backend/internal/parse"
	"smart-todo-backend/internal/parse/lifecycle"
	pkgErrors "smart-todo-backend/pkg/errors"
	"smart-todo-backend/pkg/modelclient"
)

// mapError translates domain errors into HTTP errors from pkg/errors. Model
// failures are mapped through their classification so the client sees the
// matching status and a human-readable message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, parse.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "text is required")
	case errors.Is(err, parse.ErrUnknownFeature):
		return pkgErrors.NewHTTPError(400, "unknown feature")
	case errors.Is(err, lifecycle.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	}

	var me *modelclient.ModelError
	if errors.As(err, &me) {
		switch me.Kind {
		case modelclient.KindRateLimit:
			return pkgErrors.NewHTTPError(429, me.Kind.UserMessage())
		case modelclient.KindValidation:
			return pkgErrors.NewHTTPError(400, me.Kind.UserMessage())
		default:
			return pkgErrors.NewHTTPError(502, me.Kind.UserMessage())
		}
	}

	return pkgErrors.NewHTTPError(500, "something went wrong, please try again")
}
