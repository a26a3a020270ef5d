package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "smart-todo-backend/internal/chat/delivery/http"
	"smart-todo-backend/internal/middleware"
	parseHTTP "smart-todo-backend/internal/parse/delivery/http"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
	"smart-todo-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw           middleware.Middleware
	parseHandler parseHTTP.Handler
	taskHandler  taskHTTP.Handler
	chatHandler  chatHTTP.Handler
	ready        func(context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	ParseHandler parseHTTP.Handler
	TaskHandler  taskHTTP.Handler
	ChatHandler  chatHTTP.Handler

	// Ready probes the task datastore. Nil means readiness equals liveness.
	Ready func(context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		parseHandler: cfg.ParseHandler,
		taskHandler:  cfg.TaskHandler,
		chatHandler:  cfg.ChatHandler,
		ready:        cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
