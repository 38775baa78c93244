package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinklabs/dinkpass/config"
	"github.com/dinklabs/dinkpass/db"
	"github.com/dinklabs/dinkpass/dupr"
	"github.com/dinklabs/dinkpass/handlers"
	"github.com/dinklabs/dinkpass/live"
	"github.com/dinklabs/dinkpass/metrics"
	"github.com/dinklabs/dinkpass/models"
	"github.com/dinklabs/dinkpass/repositories"
	"github.com/dinklabs/dinkpass/resolver"
	api "github.com/dinklabs/dinkpass/routes"
	"github.com/dinklabs/dinkpass/services"
	"github.com/dinklabs/dinkpass/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Store selection: Postgres when configured, otherwise the in-memory
	// stores seeded with the mock catalog.
	var (
		eventRepo        repositories.EventRepository
		registrationRepo repositories.RegistrationRepository
		chargeRepo       repositories.ChargeRepository
	)
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()
		if err := db.Migrate(dbConn); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		eventRepo = repositories.NewPostgresEventRepository(dbConn)
		registrationRepo = repositories.NewPostgresRegistrationRepository(dbConn)
		chargeRepo = repositories.NewPostgresChargeRepository(dbConn)
		logger.Info("postgres stores initialized")
	} else {
		eventRepo = repositories.NewMemoryEventRepository(models.SeedEvents()...)
		registrationRepo = repositories.NewMemoryRegistrationRepository(eventRepo)
		chargeRepo = repositories.NewMemoryChargeRepository()
		logger.Warn("DATABASE_URL not set, using in-memory stores (state is lost on restart)")
	}

	// Banner uploads are optional: without R2 settings events keep whatever
	// image URL the creator supplied.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	}

	nameResolver := resolver.New(
		resolver.NewProfileClient(cfg.ProfileResolverURL, cfg.ResolverTimeout),
		resolver.NewENSClient(cfg.ENSResolverURL, cfg.ResolverTimeout),
		logger,
	)

	// DUPR cross-checks are advisory and only active with an API key.
	var verifier services.RatingVerifier
	if cfg.DUPRAPIKey != "" {
		verifier = dupr.NewClient(cfg.DUPRAPIURL, cfg.DUPRAPIKey, 10*time.Second)
		logger.Info("DUPR rating cross-check enabled")
	}

	metricsService := metrics.NewService()

	hub := live.NewHub(logger)
	go hub.Run()

	eventService := services.NewEventService(eventRepo, registrationRepo, uploader, metricsService, logger)
	registrationService := services.NewRegistrationService(registrationRepo, eventRepo, nameResolver, verifier, metricsService, logger)
	chargeService := services.NewChargeService(chargeRepo, metricsService, logger)
	logger.Info("services initialized")

	eventHandler := handlers.NewEventHandler(eventService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, hub)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	resolveHandler := handlers.NewResolveHandler(nameResolver)
	webSocketHandler := handlers.NewWebSocketHandler(hub, eventService, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		eventHandler,
		registrationHandler,
		chargeHandler,
		resolveHandler,
		webSocketHandler,
		metrics.NewHandler(),
		[]byte(cfg.JWTSecretKey),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
