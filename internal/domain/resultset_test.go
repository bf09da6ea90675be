package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() *ResultSet {
	return &ResultSet{
		Columns: []Column{
			{Name: "id", Type: ColumnNumeric, DeclaredType: "INT8"},
			{Name: "name", Type: ColumnText, DeclaredType: "TEXT"},
			{Name: "amount", Type: ColumnNumeric, DeclaredType: "NUMERIC"},
		},
		Rows: [][]Value{
			{NumberValue(1), TextValue("Ada"), NumberValue(10.5)},
			{NumberValue(2), TextValue("Grace"), Null()},
		},
	}
}

func TestResultSet_ColumnLookup(t *testing.T) {
	rs := sample()

	assert.Equal(t, 0, rs.ColumnIndex("id"))
	assert.Equal(t, -1, rs.ColumnIndex("ID"), "lookup is case-sensitive")
	assert.True(t, rs.HasColumn("amount"))
	assert.False(t, rs.HasColumn("missing"))
}

func TestResultSet_NumericColumnIndexes(t *testing.T) {
	assert.Equal(t, []int{0, 2}, sample().NumericColumnIndexes())
}

func TestResultSet_ColumnValuesSkipsNulls(t *testing.T) {
	rs := sample()

	assert.Equal(t, []float64{1, 2}, rs.ColumnValues(0))
	assert.Equal(t, []float64{10.5}, rs.ColumnValues(2))
	assert.Empty(t, rs.ColumnValues(1), "text cells yield no observations")
	assert.Nil(t, rs.ColumnValues(99))
}

func TestResultSet_NilRowCount(t *testing.T) {
	var rs *ResultSet
	assert.Equal(t, 0, rs.RowCount())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "NULL", Null().String())
	assert.Equal(t, "42", NumberValue(42).String())
	assert.Equal(t, "10.5", NumberValue(10.5).String())
	assert.Equal(t, "hello", TextValue("hello").String())
}

func TestErrorTypes(t *testing.T) {
	cfg := ErrConfig("PG_USER is required")
	assert.Equal(t, "PG_USER is required", cfg.Error())

	conn := ErrConnection("ping %s:%d failed", "postgres", 5432)
	assert.Equal(t, "ping postgres:5432 failed", conn.Error())

	q := ErrQuery("relation %q does not exist", "mart.missing")
	assert.Equal(t, `relation "mart.missing" does not exist`, q.Error())
}
