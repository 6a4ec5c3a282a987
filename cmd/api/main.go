// Schedule Builder API
//
// REST API for building schedules of time slots and analysing them.
//
//	@title			Schedule Builder API
//	@version		1.0
//	@description	Build schedules of HH:mm time slots and analyse conflicts, gaps, utilization and suggestions.
//
//	@BasePath	/v1
//
//	@tag.name			schedules
//	@tag.description	Schedule management and calendar export
//
//	@tag.name			time-slots
//	@tag.description	Time slots within a schedule
//
//	@tag.name			analysis
//	@tag.description	Conflict, gap and utilization analysis
//
//	@tag.name			snapshot
//	@tag.description	Bulk export and import of all schedules
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/schedule-builder/internal/api"
	"github.com/blaisecz/schedule-builder/internal/api/handler"
	"github.com/blaisecz/schedule-builder/internal/api/middleware"
	"github.com/blaisecz/schedule-builder/internal/config"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/llm"
	"github.com/blaisecz/schedule-builder/internal/logging"
	"github.com/blaisecz/schedule-builder/internal/repository"
	"github.com/blaisecz/schedule-builder/internal/seed"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/blaisecz/schedule-builder/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Schedule{}, &domain.TimeSlot{}); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migration completed")

	if cfg.Seed {
		logger.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Initialize repositories
	scheduleRepo := repository.NewScheduleRepository(db)
	timeSlotRepo := repository.NewTimeSlotRepository(db)

	// Initialize services
	scheduleService := service.NewScheduleService(scheduleRepo)
	timeSlotService := service.NewTimeSlotService(timeSlotRepo, scheduleRepo)
	analysisService := service.NewAnalysisService(scheduleRepo, domain.ViewType(cfg.DefaultView))

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIScheduleInsightsModel)
	if openaiClient == nil {
		logger.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(analysisService, openaiClient)

	// Initialize handlers
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	timeSlotHandler := handler.NewTimeSlotHandler(timeSlotService)
	analysisHandler := handler.NewAnalysisHandler(analysisService, insightsService)
	calendarHandler := handler.NewCalendarHandler(scheduleService)
	snapshotHandler := handler.NewSnapshotHandler(scheduleService)

	// Setup router
	router := api.NewRouter(
		scheduleHandler,
		timeSlotHandler,
		analysisHandler,
		calendarHandler,
		snapshotHandler,
		middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
