package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weekly-task-planner/config"
	_ "weekly-task-planner/docs" // Swagger docs
	"weekly-task-planner/internal/httpserver"
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/datemath"
	"weekly-task-planner/pkg/log"
)

// @title       Weekly Task Planner API
// @description Week-strip calendar with per-day tasks, served as a JSON view model per planner session.
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

	logger.Info(ctx, "Starting Weekly Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	calendar, err := datemath.NewCalendar(cfg.Planner.Timezone, cfg.Planner.WeekStart)
	if err != nil {
		logger.Warnf(ctx, "Invalid planner calendar settings, falling back to UTC/sunday: %v", err)
		calendar, _ = datemath.NewCalendar("UTC", "sunday")
	}
	logger.Infof(ctx, "Calendar: location=%s week_start=%s", calendar.Location(), calendar.WeekStart())

	// 4. Sessions
	sessions := session.NewManager(logger, calendar, session.Config{
		TTL:          cfg.Planner.SessionTTL,
		MaxSessions:  cfg.Planner.MaxSessions,
		RemovalDelay: cfg.Planner.RemovalDelay,
		SeedExamples: cfg.Planner.SeedExamples,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Sessions:        sessions,
		YearRadius:      cfg.Planner.YearRadius,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
