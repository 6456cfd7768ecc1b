package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/freelance_books/internal/adapters/pdf"
	"github.com/SscSPs/freelance_books/internal/core/services"
	"github.com/SscSPs/freelance_books/internal/handlers"
	"github.com/SscSPs/freelance_books/internal/middleware"
	"github.com/SscSPs/freelance_books/internal/platform/telemetry"
	"github.com/SscSPs/freelance_books/internal/repositories/database/pgsql"
	"github.com/SscSPs/freelance_books/internal/utils"
	"github.com/SscSPs/freelance_books/pkg/cache"
	"github.com/SscSPs/freelance_books/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("skip-migrations", false, "Do not apply pending migrations on start")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if skip, _ := cmd.Flags().GetBool("skip-migrations"); !skip {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTLPEndpoint, cfg.IsProduction, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer cache.CloseRedisClient(redisClient)
	}
	authLimiter, err := middleware.NewIPLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	metrics := telemetry.NewMetrics()
	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, pdf.NewInvoiceRenderer(), metrics)

	if cfg.SeedDefaultPaymentTerms {
		if _, err := container.PaymentTerm.SeedDefaultPaymentTerms(ctx); err != nil {
			return err
		}
	}

	if err := handlers.RegisterValidators(); err != nil {
		return err
	}
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	deps := handlers.RouteDeps{Metrics: metrics, AuthLimiter: authLimiter, Posthog: posthogClient}
	handlers.ApplyGlobalMiddleware(r, cfg, deps)
	handlers.RegisterRoutes(r, cfg, container, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
