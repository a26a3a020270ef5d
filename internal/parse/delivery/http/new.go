package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/parse"
	"smart-todo-backend/internal/parse/lifecycle"
	pkgLog "smart-todo-backend/pkg/log"
)

// Handler is the public interface for the parse HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	OpenSession(c *gin.Context)
	Keystroke(c *gin.Context)
	Blur(c *gin.Context)
	SessionResult(c *gin.Context)
	CloseSession(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       parse.UseCase
	sessions *lifecycle.Manager
}

// New creates a new HTTP handler for the parse domain.
func New(l pkgLog.Logger, uc parse.UseCase, sessions *lifecycle.Manager) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
