package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), h.Create)
	rg.GET("", mw.Auth(), h.List)
	rg.PATCH("/:id", mw.Auth(), h.Update)
	rg.DELETE("/:id", mw.Auth(), h.Delete)
}
