// Sleep Diary API
//
// REST API for daily sleep records, weekly summaries and bedtime schedules.
//
//	@title			Sleep Diary API
//	@version		1.0
//	@description	Daily sleep records merged from manual entries, device health data and in-app tracking, with scores, weekly summaries and schedules.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-records
//	@tag.description	Daily sleep records, health-data sync and weekly summaries
//
//	@tag.name			schedule
//	@tag.description	Bedtime schedule and reminder endpoints
//
//	@tag.name			sleep-insights
//	@tag.description	Chronotype and LLM-powered insights
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/sleep-diary/internal/api"
	"github.com/blaisecz/sleep-diary/internal/api/handler"
	"github.com/blaisecz/sleep-diary/internal/config"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/langfuse"
	"github.com/blaisecz/sleep-diary/internal/llm"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/blaisecz/sleep-diary/internal/seed"
	"github.com/blaisecz/sleep-diary/internal/service"
	"github.com/blaisecz/sleep-diary/internal/telemetry"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.DailySleepRecord{}, &domain.SleepSchedule{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data", zap.Bool("seed", cfg.Seed))
		if err := seed.Run(db, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Tracing
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-diary-api", log)
	if err != nil {
		log.Fatal("failed to initialize tracer", zap.Error(err))
	}

	// Langfuse client and insights prompt
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, log)

	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		SavePath:    cfg.PromptCachePath(),
	}, log)
	if err != nil {
		log.Info("using built-in insights prompt", zap.Error(err))
	} else {
		log.Info("insights prompt ready", zap.String("name", prompt.Name), zap.Int("version", prompt.Version), zap.Bool("cached", prompt.Cached))
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepInsightsModel, prompt.Text)
	if openaiClient == nil {
		log.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewSleepRecordRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.DefaultTimezone)
	recordService := service.NewSleepRecordService(recordRepo, userRepo, log)
	syncService := service.NewSyncService(recordRepo, userRepo, log)
	trackingService := service.NewTrackingService(recordRepo, userRepo, log)
	summaryService := service.NewSummaryService(recordRepo, userRepo)
	chronotypeService := service.NewChronotypeService(recordRepo, userRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, userRepo)
	insightsService := service.NewInsightsService(chronotypeService, summaryService, openaiClient, langfuseClient, userRepo, log)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	recordHandler := handler.NewSleepRecordHandler(recordService, summaryService)
	syncHandler := handler.NewSyncHandler(syncService, trackingService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	insightsHandler := handler.NewInsightsHandler(chronotypeService, insightsService, langfuseClient, log)

	// Setup router
	router := api.NewRouter(userHandler, recordHandler, syncHandler, scheduleHandler, insightsHandler, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := langfuseClient.Flush(shutdownCtx); err != nil {
		log.Warn("langfuse flush incomplete", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
