// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"martview/internal/domain"
)

// Config holds the configuration for the dashboard. Immutable after
// LoadFromEnv; created once at process start.
type Config struct {
	PGUser     string // database user (required)
	PGPassword string // database password (required)
	PGHost     string // database host (default "postgres")
	PGPort     int    // database port (default 5432)
	PGDatabase string // target database (default "postgres")
	PGSchema   string // schema to browse (default "mart")

	ListenAddr string        // HTTP listen address (default ":8080")
	LogLevel   string        // log level: debug, info, warn, error (default "info")
	CacheTTL   time.Duration // memoization window for catalog and table loads (default 300s)
	RowLimit   int           // hard row ceiling for table loads (default 1000)

	// Rate limiting for the UI surface.
	RateLimitRPS   float64 // sustained requests per second (default 20)
	RateLimitBurst int     // burst capacity (default 40)
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadFromEnv loads configuration from environment variables.
// PG_USER and PG_PASSWORD are required; everything else has a default.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		PGUser:     os.Getenv("PG_USER"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGHost:     os.Getenv("PG_HOST"),
		PGDatabase: os.Getenv("PG_DATABASE"),
		PGSchema:   os.Getenv("PG_SCHEMA"),
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	if cfg.PGUser == "" {
		return nil, domain.ErrConfig("PG_USER is required")
	}
	if cfg.PGPassword == "" {
		return nil, domain.ErrConfig("PG_PASSWORD is required")
	}

	if v := os.Getenv("PG_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 65535 {
			return nil, domain.ErrConfig("PG_PORT must be a port number, got %q", v)
		}
		cfg.PGPort = n
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, domain.ErrConfig("CACHE_TTL must be a positive duration, got %q", v)
		}
		cfg.CacheTTL = d
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}

	// Defaults
	if cfg.PGHost == "" {
		cfg.PGHost = "postgres"
	}
	if cfg.PGPort == 0 {
		cfg.PGPort = 5432
	}
	if cfg.PGDatabase == "" {
		cfg.PGDatabase = "postgres"
	}
	if cfg.PGSchema == "" {
		cfg.PGSchema = "mart"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 300 * time.Second
	}
	if cfg.RowLimit == 0 {
		cfg.RowLimit = 1000
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 20
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 40
	}

	return cfg, nil
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be in KEY=VALUE format. Comments (#) and blank
// lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return err
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Env vars take precedence over .env entries.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
