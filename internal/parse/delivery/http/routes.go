package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// AI routes are rate limited on top of auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.Auth(), mw.RateLimit(), h.Parse)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", mw.Auth(), h.OpenSession)
		sessions.POST("/:id/keystroke", mw.Auth(), h.Keystroke)
		sessions.POST("/:id/blur", mw.Auth(), mw.RateLimit(), h.Blur)
		sessions.GET("/:id/result", mw.Auth(), h.SessionResult)
		sessions.DELETE("/:id", mw.Auth(), h.CloseSession)
	}
}
