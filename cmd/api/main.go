package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo-backend/config"
	_ "smart-todo-backend/docs" // Swagger docs
	chatHTTP "smart-todo-backend/internal/chat/delivery/http"
	chatUC "smart-todo-backend/internal/chat/usecase"
	"smart-todo-backend/internal/httpserver"
	"smart-todo-backend/internal/middleware"
	parseHTTP "smart-todo-backend/internal/parse/delivery/http"
	"smart-todo-backend/internal/parse/lifecycle"
	parseUC "smart-todo-backend/internal/parse/usecase"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
	supabaseRepo "smart-todo-backend/internal/task/repository/supabase"
	taskUC "smart-todo-backend/internal/task/usecase"
	"smart-todo-backend/pkg/datemath"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/modelclient"
)

// @title       Smart Todo API
// @description AI-assisted task parsing and management backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Supabase URL: %s", cfg.Supabase.URL)

	// 3. External collaborators
	var model modelclient.IModelClient
	if cfg.Model.URL != "" {
		model = modelclient.NewClient(cfg.Model.URL, cfg.Model.APIKey)
		logger.Infof(ctx, "Model endpoint configured at %s", cfg.Model.URL)
	} else {
		logger.Warn(ctx, "MODEL_URL not set, AI parsing runs on heuristics only")
	}

	var calendar gcalendar.ICalendar
	if cfg.Calendar.CredentialsPath != "" {
		calClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	dateMath, dtErr := datemath.NewParser(cfg.Calendar.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, dtErr)
		dateMath, _ = datemath.NewParser("UTC")
	}

	// 4. Task domain
	supabaseClient := supabaseRepo.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey, cfg.Supabase.TasksTable)
	taskRepo := supabaseRepo.New(logger, supabaseClient)
	taskUseCase := taskUC.New(logger, taskRepo, dateMath)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 5. Parse domain
	parseUseCase := parseUC.New(logger, model, calendar, parseUC.Config{
		CacheSize:      cfg.Parse.CacheSize,
		CacheTTL:       cfg.Parse.CacheTTL,
		Timeout:        cfg.Model.Timeout,
		RetryAttempts:  cfg.Parse.RetryAttempts,
		RetryBaseDelay: cfg.Parse.RetryBaseDelay,
		CalendarID:     cfg.Calendar.CalendarID,
	})
	sessions := lifecycle.NewManager(logger, parseUseCase, lifecycle.Config{
		DebounceWindow: cfg.Parse.DebounceWindow,
		MinCharsTyping: cfg.Parse.MinCharsTyping,
		MinCharsBlur:   cfg.Parse.MinCharsBlur,
		MinWords:       cfg.Parse.MinWords,
		SessionIdleTTL: cfg.Parse.SessionIdleTTL,
	}, nil)
	parseHandler := parseHTTP.New(logger, parseUseCase, sessions)

	// 6. Chat domain
	chatUseCase := chatUC.New(logger, model, cfg.Chat.Timeout)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.PerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		ParseHandler: parseHandler,
		TaskHandler:  taskHandler,
		ChatHandler:  chatHandler,
		Ready:        supabaseClient.Ping,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
