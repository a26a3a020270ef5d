package middleware

import (
	pkgLog "smart-todo-backend/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware bundle. requestsPerMin caps each caller's AI
// request rate; zero disables limiting.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{l: l, limiter: limiter}
}
