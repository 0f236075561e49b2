package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/dialect/impala"
	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/query/compiler"
)

func TestBuilderProducesCompilableQuery(t *testing.T) {
	q := FromSchema("analytics", "orders").
		SelectExpr(Trunc(Col("created_at"), ast.GranularityQuarter), "q").
		SelectExpr(Count(), "n").
		WhereOp("total", ast.OpGreaterOrEqual, 100).
		GroupBy(Trunc(Col("created_at"), ast.GranularityQuarter)).
		OrderByDesc(Trunc(Col("created_at"), ast.GranularityQuarter)).
		Build()

	got, err := compiler.New(impala.New()).Compile(q)
	require.NoError(t, err)

	truncSQL := "trunc(CAST(`t1`.`created_at` AS TIMESTAMP), 'Q')"
	assert.Equal(t,
		"SELECT "+truncSQL+" AS `q`, count(*) AS `n` FROM `analytics`.`orders` `t1` "+
			"WHERE `t1`.`total` >= ? GROUP BY "+truncSQL+" ORDER BY "+truncSQL+" DESC",
		got.SQL)
	assert.Equal(t, []interface{}{100}, got.Args)
}

func TestBuilderSelectAndWhere(t *testing.T) {
	q := From("users").
		Select("id", "email").
		Where("active", true).
		WhereOp("age", ast.OpLessThan, 30).
		Build()

	assert.Equal(t, &ast.TableRef{Name: "users"}, q.Source)
	require.Len(t, q.Fields, 2)
	require.NotNil(t, q.Where)
	assert.Equal(t, ast.OpAND, q.Where.Operator)
	require.Len(t, q.Where.Conditions, 2)
}

func TestBuilderUseOr(t *testing.T) {
	q := From("users").
		Select("id").
		Where("status", "new").
		Where("status", "trial").
		UseOr().
		Build()

	assert.Equal(t, ast.OpOR, q.Where.Operator)
}

func TestBuilderPagination(t *testing.T) {
	q := From("orders").
		Select("id").
		OrderByColumn("created_at", ast.SortDesc).
		Page(3, 10).
		Build()

	require.NotNil(t, q.Page)
	assert.Equal(t, 20, q.Page.Offset())
}

func TestExpressionHelpers(t *testing.T) {
	assert.Equal(t, &ast.FieldRef{Name: "x"}, Col("x"))
	assert.Equal(t, ast.AggSum, Agg(ast.AggSum, "total").Func)
	assert.Equal(t, 0.5, Percentile("total", 0.5).P)
	assert.Equal(t, -7, Shift(Col("t"), -7, ast.UnitDay).Amount)
	assert.Equal(t, ast.GranularityYear, Extract(Col("t"), ast.GranularityYear).Granularity)
	assert.Equal(t, &ast.Median{Expr: Col("total")}, Median("total"))
}
