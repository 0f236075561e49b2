package sqlgen

import (
	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

// Dialect adapts the generic compiler to one engine's SQL. The compiler
// asks the dialect per expression node, and hands it two whole clauses
// for rewriting: the source-table reference and pagination. Every other
// clause keeps the generic rendering.
type Dialect interface {
	// Name is the dialect identifier, e.g. "impala".
	Name() string

	// QuoteIdentifier quotes a single identifier in the dialect's style.
	QuoteIdentifier(name string) string

	// RenderSourceTable renders the FROM target for the primary source
	// table and returns the alias it bound, if any. The compiler seeds
	// the statement scope with that alias.
	RenderSourceTable(ref *ast.TableRef) (sql string, alias string)

	// SourceTableAlias is the fixed alias unqualified field references
	// default to when no alias is bound in the active scope.
	SourceTableAlias() string

	// ApplyPagination renders the final statement text including the
	// pagination clause. st is fully assembled apart from pagination.
	ApplyPagination(st *Statement, page *ast.Pagination) (string, error)

	// TruncateSQL truncates a timestamp expression to a granularity.
	TruncateSQL(g ast.Granularity, expr string) (string, error)

	// ExtractSQL extracts a component of a timestamp expression.
	ExtractSQL(g ast.Granularity, expr string) (string, error)

	// StringReplaceSQL replaces every pattern match inside expr.
	StringReplaceSQL(expr, pattern, replacement string) string

	// RegexExtractSQL extracts the first pattern match from expr.
	RegexExtractSQL(expr, pattern string) string

	// MedianSQL renders the median aggregate.
	MedianSQL(expr string) string

	// PercentileSQL renders the p-th percentile aggregate, 0 <= p <= 1.
	PercentileSQL(expr string, p float64) string

	// IntervalAddSQL shifts a timestamp expression by a signed whole
	// number of units.
	IntervalAddSQL(expr string, amount int, unit ast.IntervalUnit) (string, error)

	// EncodeTemporal compiles a temporal constant into its wire form:
	// either a raw SQL fragment or a driver-bindable value.
	EncodeTemporal(v types.TemporalValue) (WireValue, error)
}
