package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bilgisen/nexus/internal/api"
	"github.com/bilgisen/nexus/internal/config"
	"github.com/bilgisen/nexus/internal/content"
	"github.com/bilgisen/nexus/internal/inquiry"
	"github.com/bilgisen/nexus/internal/logger"
	"github.com/bilgisen/nexus/internal/middleware"
	"github.com/bilgisen/nexus/internal/queue"
	"github.com/bilgisen/nexus/internal/roadmap"
	"github.com/bilgisen/nexus/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the SPA host",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Get()
	log.Info().
		Str("env", cfg.Env).
		Str("content_source", cfg.ContentSource).
		Str("inquiry_sink", cfg.InquirySink).
		Str("ai_provider", cfg.AIProvider).
		Msg("Starting application...")

	ctx := cmd.Context()

	backends, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer backends.close()

	provider, err := roadmap.NewProvider(ctx, cfg)
	switch {
	case errors.Is(err, roadmap.ErrConfigurationMissing):
		log.Warn().Msg("API_KEY is not set; the roadmap endpoint will report the engine as offline")
		provider = nil
	case err != nil:
		return fmt.Errorf("failed to initialize AI provider: %w", err)
	}

	h := api.NewHandlers(
		content.NewService(backends.content, logger.Component("content")),
		inquiry.NewService(backends.sink, logger.Component("inquiry")),
		roadmap.NewService(provider, cfg.AITimeout, logger.Component("roadmap")),
	)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	api.SetupRoutes(app, h, cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
	return nil
}

// deps holds the backends selected by configuration.
type deps struct {
	content content.Store
	sink    inquiry.Sink
	closers []func() error
}

func (d *deps) close() {
	log := logger.Get()
	for _, c := range d.closers {
		if err := c(); err != nil {
			log.Error().Err(err).Msg("Error closing backend")
		}
	}
}

func buildDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{}

	var objects *storage.Storage
	if cfg.ContentSource == config.ContentR2 || cfg.InquirySink == config.SinkR2 {
		client, err := storage.NewR2Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		objects = storage.NewStorage(client, cfg.R2Bucket)
	}

	store, err := buildContentStore(cfg, objects)
	if err != nil {
		return nil, err
	}
	d.content = store

	sink, closer, err := buildSink(cfg, objects, logger.Component("inquiry"))
	if err != nil {
		return nil, err
	}
	d.sink = sink
	if closer != nil {
		d.closers = append(d.closers, closer)
	}
	return d, nil
}

func buildContentStore(cfg *config.Config, objects *storage.Storage) (content.Store, error) {
	switch cfg.ContentSource {
	case config.ContentFile:
		store, err := content.LoadFile(cfg.ContentFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.ContentR2:
		return content.NewObjectStore(objects, cfg.ContentKey), nil
	default:
		store, err := content.LoadDefault()
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

func buildSink(cfg *config.Config, objects *storage.Storage, log zerolog.Logger) (inquiry.Sink, func() error, error) {
	switch cfg.InquirySink {
	case config.SinkWebhook:
		return inquiry.NewWebhookSink(cfg.InquiryWebhookURL, cfg.HTTPTimeout), nil, nil
	case config.SinkRedis:
		client, err := queue.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		return inquiry.NewQueueSink(client, cfg.InquiryQueue), client.Close, nil
	case config.SinkR2:
		return inquiry.NewArchiveSink(objects, cfg.InquiryPrefix), nil, nil
	default:
		return inquiry.NewLogSink(log), nil, nil
	}
}
