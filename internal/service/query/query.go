// Package query executes ad-hoc SQL from the console and keeps an
// in-memory history of recent runs.
package query

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"martview/internal/domain"
)

// historyLimit caps the in-memory run history. Discarded on restart.
const historyLimit = 25

// Runner is the data access the service needs.
type Runner interface {
	RunQuery(ctx context.Context, sqlText string) (*domain.ResultSet, error)
}

// Run records one ad-hoc execution attempt, successful or not.
type Run struct {
	ID       string
	SQL      string
	Err      string // empty on success
	RowCount int
	Duration time.Duration
	At       time.Time
}

// OK reports whether the run succeeded.
func (r Run) OK() bool { return r.Err == "" }

// Service executes caller-supplied SQL verbatim against the database.
// Failures are captured as QueryError values and never raised past
// this boundary; the caller renders them as messages.
type Service struct {
	runner Runner
	logger *slog.Logger

	mu      sync.Mutex
	history []Run // newest first
}

// New creates a query service.
func New(runner Runner, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{runner: runner, logger: logger}
}

// Execute runs sqlText and returns the full result set, unbounded by
// this layer. The error, when non-nil, is always a *domain.QueryError.
func (s *Service) Execute(ctx context.Context, sqlText string) (*domain.ResultSet, error) {
	if strings.TrimSpace(sqlText) == "" {
		return nil, domain.ErrQuery("sql query is required")
	}

	start := time.Now()
	rs, err := s.runner.RunQuery(ctx, sqlText)
	elapsed := time.Since(start)

	run := Run{
		ID:       uuid.NewString(),
		SQL:      sqlText,
		Duration: elapsed,
		At:       start,
	}
	if err != nil {
		run.Err = err.Error()
		s.record(run)
		s.logger.Warn("query failed", "error", err, "duration_ms", elapsed.Milliseconds())
		if _, ok := err.(*domain.QueryError); ok {
			return nil, err
		}
		return nil, domain.ErrQuery("%v", err)
	}

	run.RowCount = rs.RowCount()
	s.record(run)
	s.logger.Debug("query succeeded", "rows", rs.RowCount(), "duration_ms", elapsed.Milliseconds())
	return rs, nil
}

// History returns recent runs, newest first.
func (s *Service) History() []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Run(nil), s.history...)
}

func (s *Service) record(run Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]Run{run}, s.history...)
	if len(s.history) > historyLimit {
		s.history = s.history[:historyLimit]
	}
}
