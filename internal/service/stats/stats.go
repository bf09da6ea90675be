// Package stats computes descriptive statistics over loaded result
// sets, mirroring a dataframe describe(): count, mean, sample standard
// deviation, min, quartiles, max.
package stats

import (
	"math"
	"sort"

	"martview/internal/domain"
)

// ColumnSummary holds the describe-style statistics of one numeric
// column. Count is the number of non-null observations; the remaining
// fields are NaN when Count is 0 and Std is NaN when Count is 1.
type ColumnSummary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// Summary is the derived view of a result set: total row count plus
// statistics per numeric column, in schema order.
type Summary struct {
	RowCount int
	Columns  []string
	ByColumn map[string]ColumnSummary
}

// Summarize is a pure, total function over any result set, including
// the empty one (rowCount 0, no numeric summaries). Columns count as
// numeric by their declared type only.
func Summarize(rs *domain.ResultSet) Summary {
	s := Summary{
		RowCount: rs.RowCount(),
		ByColumn: make(map[string]ColumnSummary),
	}
	if rs == nil {
		return s
	}

	for _, idx := range rs.NumericColumnIndexes() {
		name := rs.Columns[idx].Name
		s.Columns = append(s.Columns, name)
		s.ByColumn[name] = describe(rs.ColumnValues(idx))
	}
	return s
}

func describe(vals []float64) ColumnSummary {
	cs := ColumnSummary{Count: len(vals)}
	if len(vals) == 0 {
		cs.Mean, cs.Std, cs.Min, cs.P25, cs.P50, cs.P75, cs.Max = nan(), nan(), nan(), nan(), nan(), nan(), nan()
		return cs
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	cs.Mean = sum / float64(len(sorted))

	if len(sorted) > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - cs.Mean
			sq += d * d
		}
		// Sample deviation (n-1), matching describe().
		cs.Std = math.Sqrt(sq / float64(len(sorted)-1))
	} else {
		cs.Std = nan()
	}

	cs.Min = sorted[0]
	cs.Max = sorted[len(sorted)-1]
	cs.P25 = percentile(sorted, 0.25)
	cs.P50 = percentile(sorted, 0.50)
	cs.P75 = percentile(sorted, 0.75)
	return cs
}

// percentile computes the q-th percentile of a sorted slice with
// linear interpolation between adjacent ranks.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func nan() float64 { return math.NaN() }
