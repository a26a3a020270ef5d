package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc := middleware.ScopeFromContext(c)
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func TestAuth(t *testing.T) {
	r := newRouter(middleware.New(&mockLogger{}, 0))

	t.Run("missing user header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("scope carries the forwarded user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-ID", "u42")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "u42" {
			t.Errorf("expected scope user u42, got %q", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10 per minute gives a burst of 1: the second immediate request must fail.
	r := newRouter(middleware.New(&mockLogger{}, 10))

	probe := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-ID", user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst exhaustion returns 429", func(t *testing.T) {
		if code := probe("u1"); code != http.StatusOK {
			t.Fatalf("first request should pass, got %d", code)
		}
		if code := probe("u1"); code != http.StatusTooManyRequests {
			t.Errorf("second request should be throttled, got %d", code)
		}
	})

	t.Run("callers are limited independently", func(t *testing.T) {
		if code := probe("u2"); code != http.StatusOK {
			t.Errorf("fresh caller should pass, got %d", code)
		}
	})
}
