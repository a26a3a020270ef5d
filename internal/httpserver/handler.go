package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "smart-todo-backend/internal/chat/delivery/http"
	"smart-todo-backend/internal/model"
	parseHTTP "smart-todo-backend/internal/parse/delivery/http"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.parseHandler != nil {
		ai := api.Group("/ai")
		parseHTTP.RegisterRoutes(ai, srv.parseHandler, srv.mw)
		if srv.chatHandler != nil {
			chatHTTP.RegisterRoutes(ai, srv.chatHandler, srv.mw)
		}
		srv.l.Infof(ctx, "AI routes registered under /api/v1/ai")
	} else {
		srv.l.Infof(ctx, "Parse handler not configured, skipping AI routes")
	}

	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(api.Group("/tasks"), srv.taskHandler, srv.mw)
		srv.l.Infof(ctx, "Task routes registered under /api/v1/tasks")
	} else {
		srv.l.Infof(ctx, "Task handler not configured, skipping task routes")
	}

	return nil
}
