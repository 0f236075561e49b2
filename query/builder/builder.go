// Package builder provides a fluent API for constructing abstract
// queries programmatically, as an alternative to parsing query
// documents.
package builder

import (
	"github.com/datagrove-io/impala-dialect/query/ast"
)

// QueryBuilder accumulates the parts of a select query.
type QueryBuilder struct {
	query *ast.SelectQuery
}

// From starts a query against a table.
func From(table string) *QueryBuilder {
	return &QueryBuilder{
		query: &ast.SelectQuery{Source: &ast.TableRef{Name: table}},
	}
}

// FromSchema starts a query against a schema-qualified table.
func FromSchema(schema, table string) *QueryBuilder {
	return &QueryBuilder{
		query: &ast.SelectQuery{Source: &ast.TableRef{Schema: schema, Name: table}},
	}
}

// Select adds plain column references to the select list.
func (b *QueryBuilder) Select(columns ...string) *QueryBuilder {
	for _, col := range columns {
		b.query.Fields = append(b.query.Fields, ast.SelectField{
			Expr: &ast.FieldRef{Name: col},
		})
	}
	return b
}

// SelectExpr adds an expression with an alias to the select list.
func (b *QueryBuilder) SelectExpr(expr ast.Node, alias string) *QueryBuilder {
	b.query.Fields = append(b.query.Fields, ast.SelectField{Expr: expr, Alias: alias})
	return b
}

// Where adds an equality condition.
func (b *QueryBuilder) Where(column string, value interface{}) *QueryBuilder {
	return b.WhereOp(column, ast.OpEquals, value)
}

// WhereOp adds a comparison condition against a literal value.
func (b *QueryBuilder) WhereOp(column string, op ast.ComparisonOperator, value interface{}) *QueryBuilder {
	return b.WhereExpr(ast.Condition{
		Left:     &ast.FieldRef{Name: column},
		Operator: op,
		Right:    &ast.Literal{Value: value},
	})
}

// WhereExpr adds a fully built condition.
func (b *QueryBuilder) WhereExpr(cond ast.Condition) *QueryBuilder {
	if b.query.Where == nil {
		b.query.Where = &ast.WhereClause{Operator: ast.OpAND}
	}
	b.query.Where.Conditions = append(b.query.Where.Conditions, cond)
	return b
}

// UseOr joins the accumulated conditions with OR instead of AND.
func (b *QueryBuilder) UseOr() *QueryBuilder {
	if b.query.Where == nil {
		b.query.Where = &ast.WhereClause{}
	}
	b.query.Where.Operator = ast.OpOR
	return b
}

// GroupBy adds grouping expressions.
func (b *QueryBuilder) GroupBy(exprs ...ast.Node) *QueryBuilder {
	b.query.GroupBy = append(b.query.GroupBy, exprs...)
	return b
}

// OrderBy adds an ascending ordering on an expression.
func (b *QueryBuilder) OrderBy(expr ast.Node) *QueryBuilder {
	return b.order(expr, ast.SortAsc)
}

// OrderByDesc adds a descending ordering on an expression.
func (b *QueryBuilder) OrderByDesc(expr ast.Node) *QueryBuilder {
	return b.order(expr, ast.SortDesc)
}

// OrderByColumn adds an ordering on a plain column.
func (b *QueryBuilder) OrderByColumn(column string, dir ast.SortDirection) *QueryBuilder {
	return b.order(&ast.FieldRef{Name: column}, dir)
}

func (b *QueryBuilder) order(expr ast.Node, dir ast.SortDirection) *QueryBuilder {
	b.query.OrderBy = append(b.query.OrderBy, ast.OrderByClause{Expr: expr, Direction: dir})
	return b
}

// Page requests one page of results. Page numbers are 1-based.
func (b *QueryBuilder) Page(page, itemsPerPage int) *QueryBuilder {
	b.query.Page = &ast.Pagination{Page: page, ItemsPerPage: itemsPerPage}
	return b
}

// Build returns the accumulated query.
func (b *QueryBuilder) Build() *ast.SelectQuery {
	return b.query
}

// Helpers for common expressions.

// Col references a column.
func Col(name string) *ast.FieldRef {
	return &ast.FieldRef{Name: name}
}

// Trunc truncates a temporal expression to a granularity.
func Trunc(expr ast.Node, g ast.Granularity) *ast.DateTrunc {
	return &ast.DateTrunc{Granularity: g, Expr: expr}
}

// Extract extracts a component of a temporal expression.
func Extract(expr ast.Node, g ast.Granularity) *ast.DateExtract {
	return &ast.DateExtract{Granularity: g, Expr: expr}
}

// Count is the count(*) aggregate.
func Count() *ast.Aggregate {
	return &ast.Aggregate{Func: ast.AggCount}
}

// Agg applies a plain aggregate to a column.
func Agg(fn ast.AggregateFunc, column string) *ast.Aggregate {
	return &ast.Aggregate{Func: fn, Expr: Col(column)}
}

// Median is the median aggregate over a column.
func Median(column string) *ast.Median {
	return &ast.Median{Expr: Col(column)}
}

// Percentile is the p-th percentile aggregate over a column.
func Percentile(column string, p float64) *ast.Percentile {
	return &ast.Percentile{Expr: Col(column), P: p}
}

// Shift shifts a temporal expression by a signed number of units.
func Shift(expr ast.Node, amount int, unit ast.IntervalUnit) *ast.IntervalAdd {
	return &ast.IntervalAdd{Expr: expr, Amount: amount, Unit: unit}
}
