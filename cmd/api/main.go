// Cycle Tracker API
//
// REST API for recording period starts and predicting upcoming cycles.
//
//	@title			Cycle Tracker API
//	@version		1.0
//	@description	Record period starts and get next-period, ovulation and fertile-window predictions.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			period-entries
//	@tag.description	Period entry endpoints
//
//	@tag.name			predictions
//	@tag.description	Cycle predictions and calendar
//
//	@tag.name			settings
//	@tag.description	Display settings
//
//	@tag.name			insights
//	@tag.description	LLM-generated cycle insights
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/api"
	"github.com/blaisecz/cycle-tracker/internal/api/handler"
	"github.com/blaisecz/cycle-tracker/internal/config"
	"github.com/blaisecz/cycle-tracker/internal/llm"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/blaisecz/cycle-tracker/internal/seed"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/blaisecz/cycle-tracker/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()
	log := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate database schema
	if err := config.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migration completed")

	if cfg.Seed {
		log.Info().Msg("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewPeriodEntryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	entryService := service.NewPeriodEntryService(entryRepo, userRepo)
	predictionService := service.NewPredictionService(entryRepo, userRepo, cfg.PredictionLocation())
	settingsService := service.NewSettingsService(settingsRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICycleInsightsModel)
	if openaiClient == nil {
		log.Warn().Msg("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(predictionService, openaiClient, entryRepo)

	// Initialize handlers
	router := api.NewRouter(
		log,
		handler.NewUserHandler(userService),
		handler.NewPeriodEntryHandler(entryService),
		handler.NewPredictionHandler(predictionService),
		handler.NewCalendarImageHandler(predictionService, settingsService),
		handler.NewSettingsHandler(settingsService),
		handler.NewInsightsHandler(insightsService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
