package ui

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"martview/internal/middleware"
)

// Server hosts the dashboard UI.
type Server struct {
	handler *Handler
	db      *sql.DB
	addr    string
	rate    middleware.RateLimitConfig
	logger  *slog.Logger
}

// ServerConfig holds configuration for the UI server.
type ServerConfig struct {
	Handler *Handler
	DB      *sql.DB
	Addr    string
	Rate    middleware.RateLimitConfig
	Logger  *slog.Logger
}

// NewServer creates a UI server instance.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		handler: cfg.Handler,
		db:      cfg.DB,
		addr:    cfg.Addr,
		rate:    cfg.Rate,
		logger:  cfg.Logger,
	}
}

// Serve starts the HTTP server and blocks until the context is
// cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	r := chi.NewMux()
	r.Use(
		chimw.Logger,
		chimw.Recoverer,
		chimw.Compress(5),
		cors.Handler(cors.Options{AllowedOrigins: []string{"*"}, AllowedMethods: []string{"GET", "POST"}}),
		middleware.RateLimiter(s.rate),
	)

	r.Get("/healthz", s.healthz)
	MountRoutes(r, s.handler)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("dashboard listening", "addr", s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		http.Error(w, "database unreachable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
