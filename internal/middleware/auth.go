package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/response"
)

const (
	userIDHeader = "X-User-ID"
	scopeKey     = "scope"
)

// Auth resolves the caller identity. The hosted platform terminates the real
// session; this service trusts the forwarded user ID header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext extracts the caller scope set by Auth.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
