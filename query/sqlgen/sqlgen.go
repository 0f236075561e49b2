// Package sqlgen provides dialect-neutral SQL rendering primitives and
// the extension points a dialect implements to adapt the generic query
// compiler to one engine's SQL.
package sqlgen

import (
	"fmt"
	"strings"
)

// Query represents a rendered SQL statement with its bind arguments.
type Query struct {
	SQL  string
	Args []interface{}
}

// WireValue is a compiled parameter. It is either a raw SQL fragment
// spliced into the statement text (Splice true) or a value bound through
// the driver. The splice path exists for parameter types the driver
// binds incorrectly.
type WireValue struct {
	SQL    string
	Value  interface{}
	Splice bool
}

// Statement carries the rendered clauses of a SELECT while the compiler
// assembles them, so whole-clause overrides can re-shape the statement.
// All fragments are stored without their leading keyword.
type Statement struct {
	// Columns are the rendered select-list items with aliases applied.
	Columns []string
	// OutNames are the quoted output column names, in select-list order.
	OutNames []string
	From     string
	Where    string
	GroupBy  string
	// OrderBy is the exact ordering clause rendering. Pagination rewrites
	// reuse it verbatim so windowed row numbering orders identically.
	OrderBy string
	Args    []interface{}
}

// RenderSelect assembles the statement clauses into SELECT text, without
// any pagination clause.
func RenderSelect(st *Statement) string {
	var parts []string
	parts = append(parts, "SELECT "+strings.Join(st.Columns, ", "))
	parts = append(parts, "FROM "+st.From)
	if st.Where != "" {
		parts = append(parts, "WHERE "+st.Where)
	}
	if st.GroupBy != "" {
		parts = append(parts, "GROUP BY "+st.GroupBy)
	}
	if st.OrderBy != "" {
		parts = append(parts, "ORDER BY "+st.OrderBy)
	}
	return strings.Join(parts, " ")
}

// QuoteWith quotes an identifier with the given quote rune, doubling any
// embedded quote characters.
func QuoteWith(name string, quote rune) string {
	q := string(quote)
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// FormatFloat renders a float literal without trailing zeros, the way
// function arguments such as percentile fractions are written.
func FormatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
