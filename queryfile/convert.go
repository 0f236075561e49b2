package queryfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// convertDocument lowers a raw parse tree into a query AST.
func convertDocument(doc *Document) (*ast.SelectQuery, error) {
	q := &ast.SelectQuery{
		Source: convertTable(doc.From.Table),
	}

	for _, item := range doc.Select.Items {
		expr, err := convertExpr(item.Expr)
		if err != nil {
			return nil, err
		}
		q.Fields = append(q.Fields, ast.SelectField{Expr: expr, Alias: item.Alias})
	}

	if doc.Where != nil {
		where, err := convertWhere(doc.Where)
		if err != nil {
			return nil, err
		}
		q.Where = where
	}

	if doc.GroupBy != nil {
		for _, raw := range doc.GroupBy.Exprs {
			expr, err := convertExpr(raw)
			if err != nil {
				return nil, err
			}
			q.GroupBy = append(q.GroupBy, expr)
		}
	}

	if doc.OrderBy != nil {
		for _, item := range doc.OrderBy.Items {
			expr, err := convertExpr(item.Expr)
			if err != nil {
				return nil, err
			}
			dir := ast.SortAsc
			if item.Dir == "desc" {
				dir = ast.SortDesc
			}
			q.OrderBy = append(q.OrderBy, ast.OrderByClause{Expr: expr, Direction: dir})
		}
	}

	if doc.Page != nil {
		q.Page = &ast.Pagination{ItemsPerPage: doc.Page.Items, Page: doc.Page.Page}
	}

	return q, nil
}

func convertTable(t *TableName) *ast.TableRef {
	if t.Second != "" {
		return &ast.TableRef{Schema: t.First, Name: t.Second}
	}
	return &ast.TableRef{Name: t.First}
}

func convertWhere(w *WhereClause) (*ast.WhereClause, error) {
	out := &ast.WhereClause{Operator: ast.OpAND}

	first, err := convertCond(w.First)
	if err != nil {
		return nil, err
	}
	out.Conditions = append(out.Conditions, first)

	for i, rest := range w.Rest {
		op := ast.OpAND
		if rest.Op == "or" {
			op = ast.OpOR
		}
		if i == 0 {
			out.Operator = op
		} else if out.Operator != op {
			return nil, fmt.Errorf("queryfile: mixed and/or in where clause is not supported")
		}
		cond, err := convertCond(rest.Cond)
		if err != nil {
			return nil, err
		}
		out.Conditions = append(out.Conditions, cond)
	}

	return out, nil
}

func convertCond(c *Cond) (ast.Condition, error) {
	left, err := convertExpr(c.Left)
	if err != nil {
		return ast.Condition{}, err
	}
	right, err := convertExpr(c.Right)
	if err != nil {
		return ast.Condition{}, err
	}
	op, err := comparisonOp(c.Op)
	if err != nil {
		return ast.Condition{}, err
	}
	return ast.Condition{Left: left, Operator: op, Right: right}, nil
}

func comparisonOp(op string) (ast.ComparisonOperator, error) {
	switch op {
	case "=":
		return ast.OpEquals, nil
	case "!=", "<>":
		return ast.OpNotEquals, nil
	case ">":
		return ast.OpGreaterThan, nil
	case "<":
		return ast.OpLessThan, nil
	case ">=":
		return ast.OpGreaterOrEqual, nil
	case "<=":
		return ast.OpLessOrEqual, nil
	default:
		return "", fmt.Errorf("queryfile: unknown comparison operator %q", op)
	}
}

func convertExpr(e *Expr) (ast.Node, error) {
	node, err := convertPrimary(e.Primary)
	if err != nil {
		return nil, err
	}
	if e.Interval == nil {
		return node, nil
	}

	unit := ast.IntervalUnit(e.Interval.Unit)
	if !unit.Valid() {
		return nil, fmt.Errorf("queryfile: unknown interval unit %q", e.Interval.Unit)
	}
	amount := e.Interval.Amount
	if e.Interval.Sign == "-" {
		amount = -amount
	}
	return &ast.IntervalAdd{Expr: node, Amount: amount, Unit: unit}, nil
}

func convertPrimary(p *Primary) (ast.Node, error) {
	switch {
	case p.Call != nil:
		return convertCall(p.Call)
	case p.Temporal != nil:
		return convertTemporal(p.Temporal)
	case p.String != nil:
		return &ast.Literal{Value: *p.String}, nil
	case p.Number != nil:
		return &ast.Literal{Value: numberValue(*p.Number)}, nil
	case p.Field != nil:
		if p.Field.Second != "" {
			return &ast.FieldRef{Table: p.Field.First, Name: p.Field.Second}, nil
		}
		return &ast.FieldRef{Name: p.Field.First}, nil
	default:
		return nil, fmt.Errorf("queryfile: empty expression")
	}
}

// numberValue keeps whole numbers as int so they bind as integers.
func numberValue(f float64) interface{} {
	if f == float64(int64(f)) {
		return int(f)
	}
	return f
}

func convertTemporal(lit *TemporalLit) (ast.Node, error) {
	switch lit.Kind {
	case "date":
		t, err := time.Parse(dateLayout, lit.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: bad date literal %q: want yyyy-mm-dd", lit.Pos, lit.Value)
		}
		return &ast.Literal{Value: types.LocalDate(t.Year(), t.Month(), t.Day())}, nil
	case "timestamp":
		t, err := time.Parse(dateTimeLayout, lit.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: bad timestamp literal %q: want yyyy-mm-dd hh:mm:ss", lit.Pos, lit.Value)
		}
		return &ast.Literal{Value: types.LocalDateTimeOf(t)}, nil
	default:
		return nil, fmt.Errorf("%s: unknown temporal literal kind %q", lit.Pos, lit.Kind)
	}
}

// aggregateFuncs maps call names to plain aggregates.
var aggregateFuncs = map[string]ast.AggregateFunc{
	"count": ast.AggCount,
	"sum":   ast.AggSum,
	"avg":   ast.AggAvg,
	"min":   ast.AggMin,
	"max":   ast.AggMax,
}

func convertCall(call *Call) (ast.Node, error) {
	name := strings.ToLower(call.Name)

	if fn, ok := aggregateFuncs[name]; ok {
		return convertAggregate(call, fn)
	}

	switch name {
	case "trunc":
		gran, expr, err := granularityCall(call)
		if err != nil {
			return nil, err
		}
		return &ast.DateTrunc{Granularity: gran, Expr: expr}, nil

	case "extract":
		gran, expr, err := granularityCall(call)
		if err != nil {
			return nil, err
		}
		return &ast.DateExtract{Granularity: gran, Expr: expr}, nil

	case "replace":
		args, err := exprArgs(call, 3)
		if err != nil {
			return nil, err
		}
		return &ast.StringReplace{Expr: args[0], Pattern: args[1], Replacement: args[2]}, nil

	case "regex":
		args, err := exprArgs(call, 2)
		if err != nil {
			return nil, err
		}
		return &ast.RegexExtract{Expr: args[0], Pattern: args[1]}, nil

	case "median":
		args, err := exprArgs(call, 1)
		if err != nil {
			return nil, err
		}
		return &ast.Median{Expr: args[0]}, nil

	case "percentile":
		args, err := exprArgs(call, 2)
		if err != nil {
			return nil, err
		}
		lit, ok := args[1].(*ast.Literal)
		if !ok {
			return nil, fmt.Errorf("%s: percentile wants a numeric fraction as its second argument", call.Pos)
		}
		p, ok := fraction(lit.Value)
		if !ok {
			return nil, fmt.Errorf("%s: percentile fraction must be a number between 0 and 1", call.Pos)
		}
		return &ast.Percentile{Expr: args[0], P: p}, nil

	default:
		return nil, fmt.Errorf("%s: unknown function %q", call.Pos, call.Name)
	}
}

func convertAggregate(call *Call, fn ast.AggregateFunc) (ast.Node, error) {
	if len(call.Args) != 1 {
		return nil, fmt.Errorf("%s: %s wants exactly one argument", call.Pos, fn)
	}
	arg := call.Args[0]
	if arg.Star {
		if fn != ast.AggCount {
			return nil, fmt.Errorf("%s: * is only valid in count(*)", call.Pos)
		}
		return &ast.Aggregate{Func: ast.AggCount}, nil
	}
	expr, err := convertExpr(arg.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.Aggregate{Func: fn, Expr: expr}, nil
}

// granularityCall handles trunc(expr, granularity) and
// extract(expr, granularity). The granularity is a bare identifier with
// underscores standing in for hyphens, or a quoted string verbatim.
func granularityCall(call *Call) (ast.Granularity, ast.Node, error) {
	if len(call.Args) != 2 {
		return "", nil, fmt.Errorf("%s: %s wants two arguments: expression, granularity", call.Pos, call.Name)
	}
	expr, err := convertExpr(call.Args[0].Expr)
	if err != nil {
		return "", nil, err
	}

	raw, err := granularityName(call.Args[1])
	if err != nil {
		return "", nil, fmt.Errorf("%s: %v", call.Pos, err)
	}
	gran := ast.Granularity(raw)
	if !gran.Valid() {
		return "", nil, fmt.Errorf("%s: unknown granularity %q", call.Pos, raw)
	}
	return gran, expr, nil
}

func granularityName(arg *Arg) (string, error) {
	if arg.Star || arg.Expr == nil || arg.Expr.Interval != nil {
		return "", fmt.Errorf("granularity must be a name")
	}
	p := arg.Expr.Primary
	switch {
	case p.Field != nil && p.Field.Second == "":
		return strings.ReplaceAll(p.Field.First, "_", "-"), nil
	case p.String != nil:
		return *p.String, nil
	default:
		return "", fmt.Errorf("granularity must be a name")
	}
}

func exprArgs(call *Call, want int) ([]ast.Node, error) {
	if len(call.Args) != want {
		return nil, fmt.Errorf("%s: %s wants %d arguments, got %d", call.Pos, call.Name, want, len(call.Args))
	}
	out := make([]ast.Node, 0, want)
	for _, arg := range call.Args {
		if arg.Star {
			return nil, fmt.Errorf("%s: * is only valid in count(*)", call.Pos)
		}
		expr, err := convertExpr(arg.Expr)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func fraction(v interface{}) (float64, bool) {
	var p float64
	switch n := v.(type) {
	case float64:
		p = n
	case int:
		p = float64(n)
	default:
		return 0, false
	}
	if p < 0 || p > 1 {
		return 0, false
	}
	return p, true
}
