package domain

import (
	"fmt"
	"strconv"
)

// ValueKind tags the scalar type of a single cell.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindNumber
	KindText
)

// Value is one dynamically-typed cell. Exactly one of Number/Text is
// meaningful, selected by Kind; a null carries neither.
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Number wraps a float as a numeric value.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// TextValue wraps a string as a text value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// IsNull reports whether the value is a SQL NULL.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// String renders the cell for display. NULLs render as "NULL", matching
// how the rest of the UI prints missing data.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindText:
		return v.Text
	default:
		return "NULL"
	}
}

// ColumnType classifies a column by its declared database type.
type ColumnType int

const (
	ColumnText ColumnType = iota
	ColumnNumeric
)

func (t ColumnType) String() string {
	if t == ColumnNumeric {
		return "numeric"
	}
	return "text"
}

// Column describes one result-set column: its name and the
// classification of its declared type. DeclaredType keeps the raw
// database type name for display.
type Column struct {
	Name         string
	Type         ColumnType
	DeclaredType string
}

// ResultSet is an ordered sequence of rows with an explicit column
// schema. Immutable once produced.
type ResultSet struct {
	Columns []Column
	Rows    [][]Value
}

// RowCount returns the number of rows.
func (rs *ResultSet) RowCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (rs *ResultSet) ColumnIndex(name string) int {
	for i := range rs.Columns {
		if rs.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the exact name exists.
func (rs *ResultSet) HasColumn(name string) bool {
	return rs.ColumnIndex(name) >= 0
}

// NumericColumnIndexes returns the positions of all declared-numeric
// columns, in schema order.
func (rs *ResultSet) NumericColumnIndexes() []int {
	var idx []int
	for i := range rs.Columns {
		if rs.Columns[i].Type == ColumnNumeric {
			idx = append(idx, i)
		}
	}
	return idx
}

// ColumnValues returns the non-null numeric observations of one column.
// Text cells in a numeric column are skipped rather than guessed at.
func (rs *ResultSet) ColumnValues(col int) []float64 {
	if col < 0 || col >= len(rs.Columns) {
		return nil
	}
	vals := make([]float64, 0, len(rs.Rows))
	for i := range rs.Rows {
		if v := rs.Rows[i][col]; v.Kind == KindNumber {
			vals = append(vals, v.Number)
		}
	}
	return vals
}

func (rs *ResultSet) String() string {
	return fmt.Sprintf("ResultSet(%d columns, %d rows)", len(rs.Columns), len(rs.Rows))
}
