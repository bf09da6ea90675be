// Package catalog lists the browsed schema's tables and loads bounded
// row sets, memoizing both for a fixed time window.
package catalog

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"martview/internal/cache"
	"martview/internal/domain"
)

// Repository is the data access the service needs.
type Repository interface {
	Schema() string
	ListTables(ctx context.Context) ([]string, error)
	FetchTableRows(ctx context.Context, table string, limit int) (*domain.ResultSet, error)
}

// Service memoizes catalog listings and table loads. Entries expire
// after the TTL; within the window repeated calls return the cached
// value without a database round trip. Staleness on underlying table
// mutation inside the window is an accepted trade-off.
type Service struct {
	repo     Repository
	rowLimit int
	tables   *cache.TTL[[]string]
	loads    *cache.TTL[*domain.ResultSet]
	logger   *slog.Logger
}

// New creates a catalog service with the given memoization window and
// row ceiling.
func New(repo Repository, ttl time.Duration, rowLimit int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		repo:     repo,
		rowLimit: rowLimit,
		tables:   cache.NewTTL[[]string](ttl),
		loads:    cache.NewTTL[*domain.ResultSet](ttl),
		logger:   logger,
	}
}

// SetClock overrides the cache time source. Test hook.
func (s *Service) SetClock(now func() time.Time) {
	s.tables.SetClock(now)
	s.loads.SetClock(now)
}

// Schema returns the browsed schema name.
func (s *Service) Schema() string { return s.repo.Schema() }

// RowLimit returns the hard row ceiling applied to table loads.
func (s *Service) RowLimit() int { return s.rowLimit }

// ListTables returns the schema's table names, lexicographically sorted
// with no duplicates.
func (s *Service) ListTables(ctx context.Context) ([]string, error) {
	key := "tables:" + s.repo.Schema()
	if cached, ok := s.tables.Get(key); ok {
		return cached, nil
	}

	names, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	// The catalog query already orders; re-sort and dedupe so the
	// invariant holds regardless of what the engine returned.
	sort.Strings(names)
	names = dedupeSorted(names)

	s.tables.Put(key, names)
	s.logger.Debug("catalog listed", "schema", s.repo.Schema(), "tables", len(names))
	return names, nil
}

// LoadTable fetches a bounded row set for one table. The returned rows
// are an arbitrary database-chosen prefix capped at the row ceiling,
// not a statistical sample.
func (s *Service) LoadTable(ctx context.Context, table string) (*domain.ResultSet, error) {
	key := "table:" + table
	if cached, ok := s.loads.Get(key); ok {
		return cached, nil
	}

	rs, err := s.repo.FetchTableRows(ctx, table, s.rowLimit)
	if err != nil {
		return nil, err
	}

	s.loads.Put(key, rs)
	s.logger.Debug("table loaded", "table", table, "rows", rs.RowCount())
	return rs, nil
}

func dedupeSorted(names []string) []string {
	out := names[:0]
	for i, n := range names {
		if i == 0 || names[i-1] != n {
			out = append(out, n)
		}
	}
	return out
}
