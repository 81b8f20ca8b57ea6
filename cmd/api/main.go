package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-schedule/config"
	_ "calendar-schedule/docs" // Swagger docs
	adminDomain "calendar-schedule/internal/admin"
	adminHTTP "calendar-schedule/internal/admin/delivery/http"
	adminRepoPg "calendar-schedule/internal/admin/repository/postgres"
	adminUsecase "calendar-schedule/internal/admin/usecase"
	"calendar-schedule/internal/httpserver"
	scheduleHTTP "calendar-schedule/internal/schedule/delivery/http"
	googleRepo "calendar-schedule/internal/schedule/repository/google"
	scheduleUsecase "calendar-schedule/internal/schedule/usecase"
	"calendar-schedule/pkg/db"
	"calendar-schedule/pkg/log"
	"calendar-schedule/pkg/slots"
)

// @title       Calendar Schedule API
// @description Google Workspace appointment scheduling: free slot discovery, timezone-aware grouping, and booking.
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

	logger.Info(ctx, "Starting Calendar Schedule...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar owner: %s", cfg.Google.DefaultEmail)

	// 3. Google Workspace repositories
	calRepo, err := googleRepo.New(logger, cfg.Google.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to load Google credentials from %s: %v", cfg.Google.CredentialsPath, err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json for local use")
		return
	}

	// 4. Admin registry (optional, needs a database)
	var adminUC adminDomain.UseCase
	var adminHandler adminHTTP.Handler
	if cfg.Database.URL != "" {
		pool, dbErr := db.Open(ctx, cfg.Database.URL)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to connect to database: %v", dbErr)
			return
		}
		defer pool.Close()

		adminRepo := adminRepoPg.New(pool)
		if migErr := adminRepo.Migrate(ctx); migErr != nil {
			logger.Errorf(ctx, "Failed to migrate admin registry: %v", migErr)
			return
		}

		adminUC = adminUsecase.New(logger, adminRepo)
		adminHandler = adminHTTP.New(logger, adminUC)
		logger.Info(ctx, "Admin registry initialized")
	} else {
		logger.Warn(ctx, "DATABASE_URL not set, admin registry disabled")
	}

	// 5. Schedule domain
	scheduleUC := scheduleUsecase.New(logger, calRepo, calRepo, adminUC, scheduleUsecase.Config{
		DefaultEmail: cfg.Google.DefaultEmail,
		Slots: slots.Config{
			DayStart:      cfg.Scheduling.DayStart,
			DayEnd:        cfg.Scheduling.DayEnd,
			Stride:        cfg.Scheduling.Stride,
			SlotDuration:  cfg.Scheduling.SlotDuration,
			LookaheadDays: cfg.Scheduling.LookaheadDays,
		},
		BusyCacheTTL: cfg.Scheduling.BusyCacheTTL,
	})
	scheduleHandler := scheduleHTTP.New(logger, scheduleUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ScheduleHandler: scheduleHandler,
		AdminHandler:    adminHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
