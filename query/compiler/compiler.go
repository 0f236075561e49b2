// Package compiler compiles the abstract query AST into dialect SQL.
//
// The compiler owns the generic per-node walk; the dialect supplies the
// expression rules and may take over two whole clauses (source table and
// pagination). It performs no planning or optimization and compiles in
// one direction only.
package compiler

import (
	"fmt"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

// Compiler compiles query AST into SQL for one dialect. It is stateless
// and safe for concurrent use; per-statement state lives in a Scope.
type Compiler struct {
	dialect sqlgen.Dialect
}

// New creates a compiler bound to a dialect.
func New(dialect sqlgen.Dialect) *Compiler {
	return &Compiler{dialect: dialect}
}

// Scope tracks per-statement compilation state: the table alias bound
// for the active field-reference scope. A fresh Scope is created per
// Compile call and never shared.
type Scope struct {
	TableAlias string
}

// Compile compiles a select query into SQL with bind arguments.
func (c *Compiler) Compile(q *ast.SelectQuery) (*sqlgen.Query, error) {
	if q.Source == nil {
		return nil, fmt.Errorf("%w: query has no source table", ErrInvalidQuery)
	}

	scope := &Scope{}
	b := &argBuilder{}

	fromSQL, alias := c.dialect.RenderSourceTable(q.Source)
	scope.TableAlias = alias

	st := &sqlgen.Statement{From: fromSQL}

	for i, field := range q.Fields {
		exprSQL, err := c.compileNode(scope, b, field.Expr)
		if err != nil {
			return nil, err
		}
		column, outName := c.selectItem(field, exprSQL, i)
		st.Columns = append(st.Columns, column)
		st.OutNames = append(st.OutNames, outName)
	}
	if len(st.Columns) == 0 {
		return nil, fmt.Errorf("%w: query selects no fields", ErrInvalidQuery)
	}

	if q.Where != nil && len(q.Where.Conditions) > 0 {
		whereSQL, err := c.compileWhere(scope, b, q.Where)
		if err != nil {
			return nil, err
		}
		st.Where = whereSQL
	}

	for i, expr := range q.GroupBy {
		groupSQL, err := c.compileNode(scope, b, expr)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			st.GroupBy += ", "
		}
		st.GroupBy += groupSQL
	}

	for i, ob := range q.OrderBy {
		exprSQL, err := c.compileNode(scope, b, ob.Expr)
		if err != nil {
			return nil, err
		}
		direction := ob.Direction
		if direction == "" {
			direction = ast.SortAsc
		}
		if i > 0 {
			st.OrderBy += ", "
		}
		st.OrderBy += exprSQL + " " + string(direction)
	}

	st.Args = b.args

	var sqlText string
	var err error
	if q.Page != nil {
		sqlText, err = c.dialect.ApplyPagination(st, q.Page)
	} else {
		sqlText = sqlgen.RenderSelect(st)
	}
	if err != nil {
		return nil, err
	}

	return &sqlgen.Query{SQL: sqlText, Args: st.Args}, nil
}

// CompileExpr compiles a single expression node in the given scope. It
// returns the SQL fragment and any bind arguments the fragment needs.
func (c *Compiler) CompileExpr(scope *Scope, n ast.Node) (string, []interface{}, error) {
	b := &argBuilder{}
	sql, err := c.compileNode(scope, b, n)
	return sql, b.args, err
}

// selectItem renders one select-list entry and its output column name.
// Plain field references keep their own name; any other expression gets
// an alias, generated when the caller supplied none.
func (c *Compiler) selectItem(field ast.SelectField, exprSQL string, idx int) (column, outName string) {
	alias := field.Alias
	if alias == "" {
		if ref, ok := field.Expr.(*ast.FieldRef); ok {
			return exprSQL, c.dialect.QuoteIdentifier(ref.Name)
		}
		alias = fmt.Sprintf("col_%d", idx)
	}
	quoted := c.dialect.QuoteIdentifier(alias)
	return exprSQL + " AS " + quoted, quoted
}

func (c *Compiler) compileWhere(scope *Scope, b *argBuilder, where *ast.WhereClause) (string, error) {
	op := where.Operator
	if op == "" {
		op = ast.OpAND
	}
	out := ""
	for i, cond := range where.Conditions {
		left, err := c.compileNode(scope, b, cond.Left)
		if err != nil {
			return "", err
		}
		right, err := c.compileNode(scope, b, cond.Right)
		if err != nil {
			return "", err
		}
		if i > 0 {
			out += " " + string(op) + " "
		}
		out += fmt.Sprintf("%s %s %s", left, cond.Operator, right)
	}
	return out, nil
}

func (c *Compiler) compileNode(scope *Scope, b *argBuilder, n ast.Node) (string, error) {
	switch node := n.(type) {
	case *ast.FieldRef:
		return c.compileFieldRef(scope, node), nil
	case *ast.Literal:
		return c.compileLiteral(b, node)
	case *ast.DateTrunc:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		return c.dialect.TruncateSQL(node.Granularity, expr)
	case *ast.DateExtract:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		return c.dialect.ExtractSQL(node.Granularity, expr)
	case *ast.StringReplace:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		pattern, err := c.compileNode(scope, b, node.Pattern)
		if err != nil {
			return "", err
		}
		replacement, err := c.compileNode(scope, b, node.Replacement)
		if err != nil {
			return "", err
		}
		return c.dialect.StringReplaceSQL(expr, pattern, replacement), nil
	case *ast.RegexExtract:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		pattern, err := c.compileNode(scope, b, node.Pattern)
		if err != nil {
			return "", err
		}
		return c.dialect.RegexExtractSQL(expr, pattern), nil
	case *ast.Median:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		return c.dialect.MedianSQL(expr), nil
	case *ast.Percentile:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		return c.dialect.PercentileSQL(expr, node.P), nil
	case *ast.IntervalAdd:
		expr, err := c.compileNode(scope, b, node.Expr)
		if err != nil {
			return "", err
		}
		return c.dialect.IntervalAddSQL(expr, node.Amount, node.Unit)
	case *ast.Aggregate:
		return c.compileAggregate(scope, b, node)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedQuery, n)
	}
}

// compileFieldRef qualifies a column reference. Unqualified references
// take the alias bound in the active scope, or the dialect's fixed
// source-table alias when the scope has none.
func (c *Compiler) compileFieldRef(scope *Scope, ref *ast.FieldRef) string {
	table := ref.Table
	if table == "" {
		table = scope.TableAlias
	}
	if table == "" {
		table = c.dialect.SourceTableAlias()
	}
	return c.dialect.QuoteIdentifier(table) + "." + c.dialect.QuoteIdentifier(ref.Name)
}

// compileLiteral renders a constant. Temporal constants go through the
// dialect codec, which may splice a raw fragment instead of binding.
func (c *Compiler) compileLiteral(b *argBuilder, lit *ast.Literal) (string, error) {
	if tv, ok := lit.Value.(types.TemporalValue); ok {
		wire, err := c.dialect.EncodeTemporal(tv)
		if err != nil {
			return "", err
		}
		if wire.Splice {
			return wire.SQL, nil
		}
		b.add(wire.Value)
		return "?", nil
	}
	b.add(lit.Value)
	return "?", nil
}

func (c *Compiler) compileAggregate(scope *Scope, b *argBuilder, agg *ast.Aggregate) (string, error) {
	if agg.Expr == nil {
		if agg.Func != ast.AggCount {
			return "", fmt.Errorf("%w: %s requires an expression", ErrInvalidQuery, agg.Func)
		}
		return "count(*)", nil
	}
	expr, err := c.compileNode(scope, b, agg.Expr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", agg.Func, expr), nil
}

// argBuilder collects bind arguments as expressions render, keeping them
// in placeholder order.
type argBuilder struct {
	args []interface{}
}

func (b *argBuilder) add(v interface{}) {
	b.args = append(b.args, v)
}
