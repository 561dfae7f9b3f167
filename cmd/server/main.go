package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arogya360-portal/internal/analysis"
	"arogya360-portal/internal/config"
	"arogya360-portal/internal/database"
	"arogya360-portal/internal/events"
	"arogya360-portal/internal/handler"
	"arogya360-portal/internal/repository"
	"arogya360-portal/internal/service"
	"arogya360-portal/internal/storage"
	"arogya360-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "arogya360-portal").Logger()
	if cfg.Server.GinMode != gin.ReleaseMode {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	logger.Info().Msg("configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Pick the snapshot medium and audit sink
	var (
		medium    storage.Medium
		auditRepo repository.AuditRecorder
	)
	switch cfg.Storage.Driver {
	case "memory":
		medium = storage.NewMemoryMedium()
		auditRepo = repository.NewLogAuditRepo(logger)
		logger.Warn().Msg("using in-memory storage, data is lost on restart")
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		medium = repository.NewSnapshotRepo(db)
		auditRepo = repository.NewAuditRepo(db)
		logger.Info().Str("database", cfg.Database.Database).Msg("database connected")
	}

	// 3. Hydrate the application state
	adapter := storage.NewAdapter(medium, cfg.Storage.Namespace, logger)
	storeOpts := []store.Option{store.WithLogger(logger)}
	if cfg.AsyncPersistence() {
		storeOpts = append(storeOpts, store.WithAsyncPersistence())
	}
	appStore := store.New(ctx, adapter, storeOpts...)

	// 4. Change events
	publisher, err := events.NewPublisher(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("change events disabled")
		publisher = events.NopPublisher{}
	}
	defer publisher.Close()
	appStore.Subscribe(service.NewEventRelay(publisher, cfg.Storage.Namespace, logger))

	// 5. AI analysis gateway
	var generator analysis.Generator
	if cfg.Analysis.APIKey != "" {
		gemini, err := analysis.NewGeminiGenerator(ctx, cfg.Analysis.APIKey, cfg.Analysis.Model)
		if err != nil {
			logger.Error().Err(err).Msg("AI analysis unavailable")
		} else {
			generator = gemini
		}
	} else {
		logger.Warn().Msg("API_KEY not set, AI analysis will return the fallback message")
	}
	analyzer := analysis.NewGateway(generator,
		analysis.WithTimeout(cfg.Analysis.Timeout),
		analysis.WithCache(cfg.Analysis.CacheSize),
		analysis.WithLogger(logger),
	)

	// 6. Services
	patientService := service.NewPatientService(appStore, logger)
	doctorService := service.NewDoctorService(appStore, analyzer, logger)
	adminService := service.NewAdminService(appStore, auditRepo, logger)
	pharmacyService := service.NewPharmacyService(appStore, auditRepo, logger)

	// 7. Background flush worker
	workerDone := make(chan struct{})
	if cfg.AsyncPersistence() {
		workerService := service.NewWorkerService(appStore, cfg.Storage.FlushInterval, logger)
		go func() {
			defer close(workerDone)
			workerService.Start(ctx)
		}()
	} else {
		close(workerDone)
	}

	// 8. Router
	gin.SetMode(cfg.Server.GinMode)
	r := handler.NewRouter(cfg, logger, handler.Handlers{
		Patient:  handler.NewPatientHandler(patientService),
		Doctor:   handler.NewDoctorHandler(doctorService),
		Admin:    handler.NewAdminHandler(adminService),
		Pharmacy: handler.NewPharmacyHandler(pharmacyService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// 9. Setup graceful shutdown
	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	// Stop the worker and wait for its final flush
	cancel()
	<-workerDone

	logger.Info().Msg("server exited")
}
