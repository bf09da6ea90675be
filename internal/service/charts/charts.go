// Package charts decides what, if anything, to plot for a browsed
// table or an ad-hoc result.
package charts

import (
	"context"
	"strings"

	"martview/internal/domain"
)

// OrdersRepository supplies the secondary aggregation the default
// chart needs.
type OrdersRepository interface {
	OrdersPerCustomer(ctx context.Context) (*domain.ResultSet, error)
}

// Service selects the default chart for browsed tables.
type Service struct {
	repo OrdersRepository
}

// New creates a chart selector.
func New(repo OrdersRepository) *Service {
	return &Service{repo: repo}
}

// MaybeOrdersChart returns the orders-per-customer bar chart when the
// demo heuristic fires: the table name contains "customer"
// (case-insensitive), the loaded data has a column literally named
// "id", and an "orders" table exists in the schema. The aggregation
// targets a hardcoded orders.customer_id pair; whether that column
// exists is not validated here, so a mismatched orders table surfaces
// as a query error.
func (s *Service) MaybeOrdersChart(ctx context.Context, tableName string, rs *domain.ResultSet, availableTables []string) (*domain.ChartSpec, error) {
	if !strings.Contains(strings.ToLower(tableName), "customer") {
		return nil, nil
	}
	if rs == nil || !rs.HasColumn("id") {
		return nil, nil
	}
	if !contains(availableTables, "orders") {
		return nil, nil
	}

	agg, err := s.repo.OrdersPerCustomer(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ChartPoint, 0, agg.RowCount())
	for i := range agg.Rows {
		row := agg.Rows[i]
		if len(row) < 2 {
			continue
		}
		p := domain.ChartPoint{XLabel: row[0].String(), Y: row[1].Number}
		if row[0].Kind == domain.KindNumber {
			p.X = row[0].Number
		}
		points = append(points, p)
	}

	return &domain.ChartSpec{
		Kind:   domain.ChartBar,
		Title:  "Orders per Customer",
		XLabel: "Customer ID",
		YLabel: "Total Orders",
		Points: points,
	}, nil
}

// SuggestScatter proposes a scatter chart over the first two numeric
// columns of an ad-hoc result. With exactly one numeric column it
// returns no chart and an informational message instead of an error.
func SuggestScatter(rs *domain.ResultSet) (*domain.ChartSpec, string) {
	if rs == nil {
		return nil, ""
	}

	numeric := rs.NumericColumnIndexes()
	switch {
	case len(numeric) == 0:
		return nil, ""
	case len(numeric) == 1:
		return nil, "Add at least two numeric columns to get a scatter chart."
	}

	xi, yi := numeric[0], numeric[1]
	points := make([]domain.ChartPoint, 0, rs.RowCount())
	for i := range rs.Rows {
		x, y := rs.Rows[i][xi], rs.Rows[i][yi]
		if x.IsNull() || y.IsNull() {
			continue
		}
		points = append(points, domain.ChartPoint{
			XLabel: x.String(),
			X:      x.Number,
			Y:      y.Number,
		})
	}

	return &domain.ChartSpec{
		Kind:   domain.ChartScatter,
		Title:  "Scatter: " + rs.Columns[xi].Name + " vs " + rs.Columns[yi].Name,
		XLabel: rs.Columns[xi].Name,
		YLabel: rs.Columns[yi].Name,
		Points: points,
	}, ""
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
