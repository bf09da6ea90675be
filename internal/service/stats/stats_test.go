package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"martview/internal/domain"
)

func numericColumn(name string, vals ...domain.Value) *domain.ResultSet {
	rs := &domain.ResultSet{
		Columns: []domain.Column{{Name: name, Type: domain.ColumnNumeric, DeclaredType: "FLOAT8"}},
	}
	for _, v := range vals {
		rs.Rows = append(rs.Rows, []domain.Value{v})
	}
	return rs
}

func TestSummarize_EmptyResultSet(t *testing.T) {
	s := Summarize(&domain.ResultSet{})
	assert.Equal(t, 0, s.RowCount)
	assert.Empty(t, s.Columns)
	assert.Empty(t, s.ByColumn)
}

func TestSummarize_QuartilesInterpolate(t *testing.T) {
	rs := numericColumn("amount",
		domain.NumberValue(1),
		domain.NumberValue(2),
		domain.NumberValue(3),
		domain.NumberValue(4),
	)

	s := Summarize(rs)
	require.Contains(t, s.ByColumn, "amount")
	cs := s.ByColumn["amount"]

	assert.Equal(t, 4, cs.Count)
	assert.InDelta(t, 2.5, cs.Mean, 1e-9)
	assert.InDelta(t, 1.0, cs.Min, 1e-9)
	assert.InDelta(t, 1.75, cs.P25, 1e-9)
	assert.InDelta(t, 2.5, cs.P50, 1e-9)
	assert.InDelta(t, 3.25, cs.P75, 1e-9)
	assert.InDelta(t, 4.0, cs.Max, 1e-9)
	// Sample deviation of 1..4 is sqrt(5/3).
	assert.InDelta(t, math.Sqrt(5.0/3.0), cs.Std, 1e-9)
}

func TestSummarize_SingleObservation(t *testing.T) {
	s := Summarize(numericColumn("n", domain.NumberValue(7)))
	cs := s.ByColumn["n"]

	assert.Equal(t, 1, cs.Count)
	assert.InDelta(t, 7, cs.Mean, 1e-9)
	assert.True(t, math.IsNaN(cs.Std), "single observation has no sample deviation")
	assert.InDelta(t, 7, cs.Min, 1e-9)
	assert.InDelta(t, 7, cs.P50, 1e-9)
	assert.InDelta(t, 7, cs.Max, 1e-9)
}

func TestSummarize_NullsExcluded(t *testing.T) {
	rs := numericColumn("n",
		domain.NumberValue(10),
		domain.Null(),
		domain.NumberValue(20),
		domain.Null(),
	)

	s := Summarize(rs)
	cs := s.ByColumn["n"]

	assert.Equal(t, 4, s.RowCount, "row count includes null rows")
	assert.Equal(t, 2, cs.Count, "observation count excludes nulls")
	assert.InDelta(t, 15, cs.Mean, 1e-9)
}

func TestSummarize_AllNullColumn(t *testing.T) {
	s := Summarize(numericColumn("n", domain.Null(), domain.Null()))
	cs := s.ByColumn["n"]

	assert.Equal(t, 0, cs.Count)
	assert.True(t, math.IsNaN(cs.Mean))
	assert.True(t, math.IsNaN(cs.Min))
	assert.True(t, math.IsNaN(cs.Max))
}

func TestSummarize_TextColumnsSkipped(t *testing.T) {
	rs := &domain.ResultSet{
		Columns: []domain.Column{
			{Name: "id", Type: domain.ColumnNumeric, DeclaredType: "INT8"},
			{Name: "status", Type: domain.ColumnText, DeclaredType: "TEXT"},
		},
		Rows: [][]domain.Value{
			{domain.NumberValue(1), domain.TextValue("completed")},
			{domain.NumberValue(2), domain.TextValue("returned")},
		},
	}

	s := Summarize(rs)
	assert.Equal(t, []string{"id"}, s.Columns)
	assert.NotContains(t, s.ByColumn, "status")
}

func TestSummarize_OrderInvariant(t *testing.T) {
	rs := numericColumn("n",
		domain.NumberValue(4),
		domain.NumberValue(1),
		domain.NumberValue(3),
		domain.NumberValue(2),
	)

	cs := Summarize(rs).ByColumn["n"]
	assert.True(t, cs.Min <= cs.P25)
	assert.True(t, cs.P25 <= cs.P50)
	assert.True(t, cs.P50 <= cs.P75)
	assert.True(t, cs.P75 <= cs.Max)
	assert.InDelta(t, 2.5, cs.P50, 1e-9)
}
