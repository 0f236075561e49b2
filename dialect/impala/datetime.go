package impala

import (
	"fmt"

	"github.com/datagrove-io/impala-dialect/query/ast"
)

// dateRule renders one truncation or extraction strategy over an
// expression already coerced to TIMESTAMP.
type dateRule func(expr string) string

// truncRules maps each truncatable granularity to its strategy.
//
// Minute, hour and day have no native truncation primitive, so they
// format the timestamp to a string at the desired precision and parse it
// back: a string round-trip, but semantically exact. Week through year
// use the engine's generic trunc(); 'DAY' truncates to the first day of
// the week in Impala's unit vocabulary.
var truncRules = map[ast.Granularity]dateRule{
	ast.GranularityDefault: func(expr string) string { return expr },
	ast.GranularityMinute:  formatReparse("yyyy-MM-dd HH:mm"),
	ast.GranularityHour:    formatReparse("yyyy-MM-dd HH"),
	ast.GranularityDay:     formatReparse("yyyy-MM-dd"),
	ast.GranularityWeek:    truncUnit("DAY"),
	ast.GranularityMonth:   truncUnit("MM"),
	ast.GranularityQuarter: truncUnit("Q"),
	ast.GranularityYear:    truncUnit("YEAR"),
}

// extractRules maps each extractable granularity to its strategy.
//
// The engine predates a native quarter function, so quarter-of-year is
// derived arithmetically from the month of the quarter truncation.
var extractRules = map[ast.Granularity]dateRule{
	ast.GranularityMinute:        builtin("minute"),
	ast.GranularityMinuteOfHour:  builtin("minute"),
	ast.GranularityHour:          builtin("hour"),
	ast.GranularityHourOfDay:     builtin("hour"),
	ast.GranularityDayOfMonth:    builtin("dayofmonth"),
	ast.GranularityDayOfYear:     builtin("dayofyear"),
	ast.GranularityDayOfWeek:     builtin("dayofweek"),
	ast.GranularityWeek:          builtin("weekofyear"),
	ast.GranularityWeekOfYear:    builtin("weekofyear"),
	ast.GranularityMonth:         builtin("month"),
	ast.GranularityMonthOfYear:   builtin("month"),
	ast.GranularityQuarter:       quarterOfYear,
	ast.GranularityQuarterOfYear: quarterOfYear,
	ast.GranularityYear:          builtin("year"),
}

// TruncateSQL truncates a timestamp expression to the granularity. An
// unmapped granularity is a defect: it fails instead of silently
// compiling to identity, which would corrupt aggregation results.
func (d *Dialect) TruncateSQL(g ast.Granularity, expr string) (string, error) {
	rule, ok := truncRules[g]
	if !ok {
		return "", fmt.Errorf("%w: truncate to %s", ErrUnmappedGranularity, g)
	}
	return rule(timestampExpr(expr)), nil
}

// ExtractSQL extracts the granularity's component from a timestamp
// expression.
func (d *Dialect) ExtractSQL(g ast.Granularity, expr string) (string, error) {
	rule, ok := extractRules[g]
	if !ok {
		return "", fmt.Errorf("%w: extract %s", ErrUnmappedGranularity, g)
	}
	return rule(timestampExpr(expr)), nil
}

// timestampExpr coerces an expression to TIMESTAMP.
func timestampExpr(expr string) string {
	return fmt.Sprintf("CAST(%s AS TIMESTAMP)", expr)
}

func formatReparse(pattern string) dateRule {
	return func(expr string) string {
		return fmt.Sprintf("to_timestamp(from_timestamp(%s, '%s'), '%s')", expr, pattern, pattern)
	}
}

func truncUnit(unit string) dateRule {
	return func(expr string) string {
		return fmt.Sprintf("trunc(%s, '%s')", expr, unit)
	}
}

func builtin(fn string) dateRule {
	return func(expr string) string {
		return fmt.Sprintf("%s(%s)", fn, expr)
	}
}

func quarterOfYear(expr string) string {
	return fmt.Sprintf("floor((month(trunc(%s, 'Q')) - 1) / 3) + 1", expr)
}
