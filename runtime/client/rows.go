package client

import (
	"database/sql"
	"fmt"

	"github.com/datagrove-io/impala-dialect/dialect/impala"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

// Column describes one result column.
type Column struct {
	Name         string
	DatabaseType string
	Base         types.BaseType
}

// Result is a fully collected result set. Timestamp columns hold
// *time.Time values decoded by the dialect; a SQL NULL is a nil entry.
type Result struct {
	Columns []Column
	Rows    [][]interface{}
}

// collectRows drains rows into a Result, normalizing values per column
// base type.
func collectRows(rows *sql.Rows, d *impala.Dialect) (*Result, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	result := &Result{Columns: make([]Column, len(colTypes))}
	for i, ct := range colTypes {
		dbType := ct.DatabaseTypeName()
		result.Columns[i] = Column{
			Name:         ct.Name(),
			DatabaseType: dbType,
			Base:         d.BaseType(dbType),
		}
	}

	for rows.Next() {
		raw := make([]interface{}, len(colTypes))
		ptrs := make([]interface{}, len(colTypes))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := make([]interface{}, len(raw))
		for i, v := range raw {
			normalized, err := normalizeValue(d, result.Columns[i], v)
			if err != nil {
				return nil, err
			}
			row[i] = normalized
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return result, nil
}

// normalizeValue converts a raw driver value to its client-facing form.
func normalizeValue(d *impala.Dialect, col Column, raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	switch col.Base {
	case types.BaseDateTime:
		t, err := d.DecodeTimestamp(raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		if t == nil {
			return nil, nil
		}
		return t, nil
	case types.BaseText:
		if b, ok := raw.([]byte); ok {
			return string(b), nil
		}
		return raw, nil
	default:
		return raw, nil
	}
}
