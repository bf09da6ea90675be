package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"martview/internal/app"
	"martview/internal/config"
	"martview/internal/db"
	"martview/internal/middleware"
	"martview/internal/ui"
)

func main() {
	// Load .env file (if present)
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("could not load .env", "error", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg, logger.With("component", "db"))
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = pool.Close() }()

	application := app.New(app.Deps{Cfg: cfg, DB: pool, Logger: logger})

	handler := ui.NewHandler(
		application.Services.Catalog,
		application.Services.Charts,
		application.Services.Query,
		logger.With("component", "ui"),
	)

	server := ui.NewServer(ui.ServerConfig{
		Handler: handler,
		DB:      pool,
		Addr:    cfg.ListenAddr,
		Rate: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		},
		Logger: logger,
	})

	if err := server.Serve(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
