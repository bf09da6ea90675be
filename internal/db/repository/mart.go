// Package repository provides data access for the browsed mart schema.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"martview/internal/domain"
)

// MartRepo runs catalog and data queries against one schema of the
// connected database.
type MartRepo struct {
	db     *sql.DB
	schema string
}

// NewMartRepo creates a repository scoped to the given schema.
func NewMartRepo(db *sql.DB, schema string) *MartRepo {
	return &MartRepo{db: db, schema: schema}
}

// Schema returns the schema this repository browses.
func (r *MartRepo) Schema() string { return r.schema }

// ListTables enumerates table names in the schema, sorted
// lexicographically by the database.
func (r *MartRepo) ListTables(ctx context.Context) ([]string, error) {
	const q = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		ORDER BY table_name`

	rows, err := r.db.QueryContext(ctx, q, r.schema)
	if err != nil {
		return nil, domain.ErrQuery("list tables in %s: %v", r.schema, err)
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, domain.ErrQuery("scan table name: %v", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrQuery("iterate tables: %v", err)
	}
	return tables, nil
}

// FetchTableRows returns up to limit rows of a table. The identifier is
// interpolated double-quoted; table names must originate from the
// catalog listing, never from free-text input.
func (r *MartRepo) FetchTableRows(ctx context.Context, table string, limit int) (*domain.ResultSet, error) {
	q := fmt.Sprintf(`SELECT * FROM "%s"."%s" LIMIT %d`, r.schema, table, limit) //nolint:gosec // identifiers come from the catalog listing

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrQuery("load table %s.%s: %v", r.schema, table, err)
	}
	defer func() { _ = rows.Close() }()

	rs, err := ScanResultSet(rows)
	if err != nil {
		return nil, domain.ErrQuery("scan table %s.%s: %v", r.schema, table, err)
	}
	return rs, nil
}

// OrdersPerCustomer aggregates order counts per customer from the
// hardcoded orders table. Part of the default-chart heuristic; a
// missing customer_id column fails here, unvalidated.
func (r *MartRepo) OrdersPerCustomer(ctx context.Context) (*domain.ResultSet, error) {
	q := fmt.Sprintf(`SELECT customer_id, COUNT(*) AS orders_count FROM "%s"."orders" GROUP BY customer_id`, r.schema) //nolint:gosec // schema comes from config

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrQuery("orders per customer: %v", err)
	}
	defer func() { _ = rows.Close() }()

	rs, err := ScanResultSet(rows)
	if err != nil {
		return nil, domain.ErrQuery("scan orders per customer: %v", err)
	}
	return rs, nil
}

// RunQuery executes caller-supplied SQL verbatim. No validation, no
// statement-type restriction: the single operating user is trusted to
// issue any query. Failures come back as a QueryError carrying the
// engine's message.
func (r *MartRepo) RunQuery(ctx context.Context, sqlText string) (*domain.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, sqlText) //nolint:gosec // verbatim execution is the contract of the SQL console
	if err != nil {
		return nil, domain.ErrQuery("%v", err)
	}
	defer func() { _ = rows.Close() }()

	rs, err := ScanResultSet(rows)
	if err != nil {
		return nil, domain.ErrQuery("scan results: %v", err)
	}
	return rs, nil
}

// ScanResultSet drains sql.Rows into a ResultSet with tagged cells.
// Columns are classified numeric by their declared database type, not
// by sniffing cell contents.
func ScanResultSet(rows *sql.Rows) (*domain.ResultSet, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	cols := make([]domain.Column, len(names))
	for i := range names {
		declared := ""
		if i < len(types) && types[i] != nil {
			declared = types[i].DatabaseTypeName()
		}
		cols[i] = domain.Column{
			Name:         names[i],
			Type:         classifyType(declared),
			DeclaredType: declared,
		}
	}

	var out [][]domain.Value
	for rows.Next() {
		vals := make([]interface{}, len(names))
		ptrs := make([]interface{}, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make([]domain.Value, len(vals))
		for i, v := range vals {
			row[i] = convertCell(v, cols[i].Type)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.ResultSet{Columns: cols, Rows: out}, nil
}

// numericTypeNames are the Postgres type names treated as numeric.
var numericTypeNames = map[string]bool{
	"INT2": true, "INT4": true, "INT8": true,
	"SMALLINT": true, "INTEGER": true, "INT": true, "BIGINT": true,
	"FLOAT4": true, "FLOAT8": true, "REAL": true, "DOUBLE": true,
	"NUMERIC": true, "DECIMAL": true,
}

func classifyType(declared string) domain.ColumnType {
	if numericTypeNames[strings.ToUpper(declared)] {
		return domain.ColumnNumeric
	}
	return domain.ColumnText
}

// convertCell maps a driver value onto a tagged cell. NUMERIC values
// arrive from pgx as text; they are parsed only because the column is
// declared numeric.
func convertCell(v interface{}, colType domain.ColumnType) domain.Value {
	if v == nil {
		return domain.Null()
	}
	switch t := v.(type) {
	case int64:
		return domain.NumberValue(float64(t))
	case float64:
		return domain.NumberValue(t)
	case bool:
		return domain.TextValue(strconv.FormatBool(t))
	case time.Time:
		return domain.TextValue(t.Format(time.RFC3339))
	case []byte:
		return textOrParsedNumber(string(t), colType)
	case string:
		return textOrParsedNumber(t, colType)
	default:
		return domain.TextValue(fmt.Sprintf("%v", t))
	}
}

func textOrParsedNumber(s string, colType domain.ColumnType) domain.Value {
	if colType == domain.ColumnNumeric {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return domain.NumberValue(f)
		}
	}
	return domain.TextValue(s)
}
