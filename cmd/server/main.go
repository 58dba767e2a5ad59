package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bpolitiadis/leadwave/internal/contact"
	"github.com/bpolitiadis/leadwave/internal/webui"
	"github.com/bpolitiadis/leadwave/middlewares"
	"github.com/bpolitiadis/leadwave/pkg/config"
	"github.com/bpolitiadis/leadwave/pkg/health"
	"github.com/bpolitiadis/leadwave/pkg/httpserver"
	"github.com/bpolitiadis/leadwave/pkg/logger"
	"github.com/bpolitiadis/leadwave/pkg/mailer"
	"github.com/bpolitiadis/leadwave/pkg/mailer/resend"
)

// appConfig aggregates every component's configuration, loaded from the
// environment in a single pass.
type appConfig struct {
	Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Sentry  logger.SentryConfig
	Resend  resend.Config
	Mailer  mailer.Config
	Contact contact.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor())

	sender := resend.New(cfg.Resend)
	dispatcher := mailer.New(sender, contact.NewRenderer(), cfg.Mailer)

	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logging(log))
	r.Use(middlewares.Recover(log))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"mailer": func(ctx context.Context) error {
			if cfg.Contact.ToEmail == "" {
				return fmt.Errorf("contact inbox not configured")
			}
			return nil
		},
	}, health.WithLogger(log)))

	contact.NewHandler(dispatcher, log, cfg.Contact).Routes(r)
	webui.NewHandler().Routes(r)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)

	log.InfoContext(ctx, "starting server", slog.String("addr", cfg.Addr))
	return srv.Run(ctx, r)
}
