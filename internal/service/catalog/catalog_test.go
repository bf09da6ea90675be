package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martview/internal/domain"
)

type fakeRepo struct {
	schema     string
	tables     []string
	tablesErr  error
	rows       *domain.ResultSet
	rowsErr    error
	listCalls  int
	fetchCalls int
	lastTable  string
	lastLimit  int
}

func (f *fakeRepo) Schema() string { return f.schema }

func (f *fakeRepo) ListTables(_ context.Context) ([]string, error) {
	f.listCalls++
	return f.tables, f.tablesErr
}

func (f *fakeRepo) FetchTableRows(_ context.Context, table string, limit int) (*domain.ResultSet, error) {
	f.fetchCalls++
	f.lastTable = table
	f.lastLimit = limit
	return f.rows, f.rowsErr
}

func TestListTables_SortedAndDeduped(t *testing.T) {
	repo := &fakeRepo{schema: "mart", tables: []string{"orders", "customers", "orders", "payments"}}
	svc := New(repo, 5*time.Minute, 1000, nil)

	names, err := svc.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"customers", "orders", "payments"}, names)
}

func TestListTables_MemoizedWithinWindow(t *testing.T) {
	repo := &fakeRepo{schema: "mart", tables: []string{"customers"}}
	svc := New(repo, 5*time.Minute, 1000, nil)

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	now := base
	svc.SetClock(func() time.Time { return now })

	for i := 0; i < 3; i++ {
		_, err := svc.ListTables(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.listCalls, "repeated calls within the window hit the cache")

	now = base.Add(5 * time.Minute)
	_, err := svc.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "expiry forces a fresh catalog query")
}

func TestListTables_ErrorNotCached(t *testing.T) {
	repo := &fakeRepo{schema: "mart", tablesErr: domain.ErrQuery("catalog unavailable")}
	svc := New(repo, 5*time.Minute, 1000, nil)

	_, err := svc.ListTables(context.Background())
	require.Error(t, err)

	repo.tablesErr = nil
	repo.tables = []string{"customers"}

	names, err := svc.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"customers"}, names)
	assert.Equal(t, 2, repo.listCalls)
}

func TestLoadTable_AppliesRowLimit(t *testing.T) {
	repo := &fakeRepo{schema: "mart", rows: &domain.ResultSet{}}
	svc := New(repo, 5*time.Minute, 1000, nil)

	_, err := svc.LoadTable(context.Background(), "orders")
	require.NoError(t, err)
	assert.Equal(t, "orders", repo.lastTable)
	assert.Equal(t, 1000, repo.lastLimit)
}

func TestLoadTable_MemoizedPerTable(t *testing.T) {
	repo := &fakeRepo{schema: "mart", rows: &domain.ResultSet{}}
	svc := New(repo, 5*time.Minute, 1000, nil)

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	now := base
	svc.SetClock(func() time.Time { return now })

	_, err := svc.LoadTable(context.Background(), "orders")
	require.NoError(t, err)
	_, err = svc.LoadTable(context.Background(), "orders")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.fetchCalls)

	// A different table is a separate cache entry.
	_, err = svc.LoadTable(context.Background(), "customers")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.fetchCalls)

	now = base.Add(6 * time.Minute)
	_, err = svc.LoadTable(context.Background(), "orders")
	require.NoError(t, err)
	assert.Equal(t, 3, repo.fetchCalls)
}

func TestLoadTable_ErrorPropagates(t *testing.T) {
	repo := &fakeRepo{schema: "mart", rowsErr: domain.ErrQuery("permission denied for table %s", "orders")}
	svc := New(repo, 5*time.Minute, 1000, nil)

	_, err := svc.LoadTable(context.Background(), "orders")
	var qerr *domain.QueryError
	assert.ErrorAs(t, err, &qerr)
}

func TestSchemaAndRowLimitAccessors(t *testing.T) {
	svc := New(&fakeRepo{schema: "analytics"}, time.Minute, 500, nil)
	assert.Equal(t, "analytics", svc.Schema())
	assert.Equal(t, 500, svc.RowLimit())
}
