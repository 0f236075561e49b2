package impala

import (
	"fmt"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
)

// StringReplaceSQL replaces every match of pattern inside expr. The
// engine's plain replace() is pattern-blind, so this always goes through
// regexp_replace.
func (d *Dialect) StringReplaceSQL(expr, pattern, replacement string) string {
	return fmt.Sprintf("regexp_replace(%s, %s, %s)", expr, pattern, replacement)
}

// RegexExtractSQL extracts the first match of pattern from expr.
func (d *Dialect) RegexExtractSQL(expr, pattern string) string {
	return fmt.Sprintf("regexp_extract(%s, %s)", expr, pattern)
}

// MedianSQL renders median as the 0.5 percentile; the engine has no
// median function.
func (d *Dialect) MedianSQL(expr string) string {
	return d.PercentileSQL(expr, 0.5)
}

// PercentileSQL renders the p-th percentile aggregate.
func (d *Dialect) PercentileSQL(expr string, p float64) string {
	return fmt.Sprintf("percentile(%s, %s)", expr, sqlgen.FormatFloat(p))
}

// IntervalAddSQL shifts a timestamp expression by a signed whole number
// of units. The unit is a bare identifier token in the INTERVAL literal;
// the engine accepts it neither quoted nor parameterized, so only
// members of the closed unit set are emitted.
func (d *Dialect) IntervalAddSQL(expr string, amount int, unit ast.IntervalUnit) (string, error) {
	if !unit.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidIntervalUnit, string(unit))
	}
	return fmt.Sprintf("%s + INTERVAL %d %s", timestampExpr(expr), amount, unit), nil
}
