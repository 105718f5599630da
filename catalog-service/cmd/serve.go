package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/config"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/handler"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/infrastructure/storage"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/service"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	// === LOGGING ===
	if err := logger.Setup(logger.Options{
		Service:      "catalog-service",
		Level:        cfg.Log.Level,
		LogstashAddr: cfg.Logstash.Addr,
	}); err != nil {
		logger.Warn().Err(err).Msg("Logstash unavailable, logging to stdout")
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// === STORAGE ===
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	images, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		return err
	}

	// === EVENTS ===
	publisher := newPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	// === SERVICES AND HANDLERS ===
	categoryService := service.NewCategoryService(st.categories, images, publisher)
	productService := service.NewProductService(st.products, st.categories, publisher)

	opts := handler.RouterOptions{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.JWT.Secret != "" {
		opts.Auth = handler.NewAuthMiddleware(cfg.JWT.Secret)
	} else {
		logger.Warn().Msg("JWT_SECRET not set, write routes are unauthenticated")
	}

	router := handler.SetupRoutes(
		handler.NewCategoryHandler(categoryService),
		handler.NewProductHandler(productService),
		opts,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// === RUN ===
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Str("store", cfg.StoreDriver).Msg("starting catalog service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down catalog service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info().Msg("catalog service stopped")
	return nil
}
