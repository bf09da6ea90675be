// Package db opens the PostgreSQL connection the dashboard browses.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"martview/internal/config"
	"martview/internal/domain"
)

// Connect opens a pgx-backed connection pool and verifies it with a
// ping. Returns a ConnectionError when the target is unreachable; no
// retries, the caller decides whether to surface the failure.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	dsn := BuildDSN(cfg)

	logger.Debug("connecting to postgres",
		slog.String("host", cfg.PGHost),
		slog.Int("port", cfg.PGPort),
		slog.String("database", cfg.PGDatabase))

	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, domain.ErrConnection("open postgres connection: %v", err)
	}

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, domain.ErrConnection("ping %s:%d/%s: %v", cfg.PGHost, cfg.PGPort, cfg.PGDatabase, err)
	}

	return pool, nil
}

// BuildDSN assembles the key=value connection string from config.
func BuildDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		cfg.PGHost, cfg.PGPort, cfg.PGDatabase, cfg.PGUser, cfg.PGPassword)
}
