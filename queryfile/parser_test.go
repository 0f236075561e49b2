package queryfile

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

func TestParseFullDocument(t *testing.T) {
	src := `
-- quarterly revenue per status
from analytics.orders
select trunc(created_at, quarter) as q,
       count(*) as n,
       median(total) as mid
where status = "shipped" and total >= 100
group by trunc(created_at, quarter)
order by trunc(created_at, quarter) desc
page 2 by 25
`
	q, err := ParseString("orders.query", src)
	require.NoError(t, err)

	assert.Equal(t, &ast.TableRef{Schema: "analytics", Name: "orders"}, q.Source)

	require.Len(t, q.Fields, 3)
	assert.Equal(t, "q", q.Fields[0].Alias)
	trunc, ok := q.Fields[0].Expr.(*ast.DateTrunc)
	require.True(t, ok)
	assert.Equal(t, ast.GranularityQuarter, trunc.Granularity)
	assert.Equal(t, &ast.FieldRef{Name: "created_at"}, trunc.Expr)

	agg, ok := q.Fields[1].Expr.(*ast.Aggregate)
	require.True(t, ok)
	assert.Equal(t, ast.AggCount, agg.Func)
	assert.Nil(t, agg.Expr)

	med, ok := q.Fields[2].Expr.(*ast.Median)
	require.True(t, ok)
	assert.Equal(t, &ast.FieldRef{Name: "total"}, med.Expr)

	require.NotNil(t, q.Where)
	assert.Equal(t, ast.OpAND, q.Where.Operator)
	require.Len(t, q.Where.Conditions, 2)
	assert.Equal(t, ast.OpEquals, q.Where.Conditions[0].Operator)
	assert.Equal(t, &ast.Literal{Value: "shipped"}, q.Where.Conditions[0].Right)
	assert.Equal(t, ast.OpGreaterOrEqual, q.Where.Conditions[1].Operator)
	assert.Equal(t, &ast.Literal{Value: 100}, q.Where.Conditions[1].Right)

	require.Len(t, q.GroupBy, 1)
	require.Len(t, q.OrderBy, 1)
	assert.Equal(t, ast.SortDesc, q.OrderBy[0].Direction)

	require.NotNil(t, q.Page)
	assert.Equal(t, 2, q.Page.Page)
	assert.Equal(t, 25, q.Page.ItemsPerPage)
}

func TestParseTemporalLiterals(t *testing.T) {
	src := `
from orders
select id
where created_at >= date "2024-01-15" and updated_at < timestamp "2024-06-01 12:30:00"
`
	q, err := ParseString("", src)
	require.NoError(t, err)

	require.Len(t, q.Where.Conditions, 2)

	lit, ok := q.Where.Conditions[0].Right.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, types.LocalDate(2024, time.January, 15), lit.Value)

	lit, ok = q.Where.Conditions[1].Right.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, types.LocalDateTime(2024, time.June, 1, 12, 30, 0), lit.Value)
}

func TestParseIntervalArithmetic(t *testing.T) {
	q, err := ParseString("", `from orders select created_at - interval 7 day`)
	require.NoError(t, err)

	shift, ok := q.Fields[0].Expr.(*ast.IntervalAdd)
	require.True(t, ok)
	assert.Equal(t, -7, shift.Amount)
	assert.Equal(t, ast.UnitDay, shift.Unit)
	assert.Equal(t, &ast.FieldRef{Name: "created_at"}, shift.Expr)

	q, err = ParseString("", `from orders select created_at + interval 3 month`)
	require.NoError(t, err)
	shift = q.Fields[0].Expr.(*ast.IntervalAdd)
	assert.Equal(t, 3, shift.Amount)
	assert.Equal(t, ast.UnitMonth, shift.Unit)
}

func TestParseGranularitySpellings(t *testing.T) {
	// Underscored identifiers stand in for the hyphenated names.
	q, err := ParseString("", `from orders select extract(created_at, quarter_of_year)`)
	require.NoError(t, err)
	ext := q.Fields[0].Expr.(*ast.DateExtract)
	assert.Equal(t, ast.GranularityQuarterOfYear, ext.Granularity)

	// Quoted strings are taken verbatim.
	q, err = ParseString("", `from orders select extract(created_at, "minute-of-hour")`)
	require.NoError(t, err)
	ext = q.Fields[0].Expr.(*ast.DateExtract)
	assert.Equal(t, ast.GranularityMinuteOfHour, ext.Granularity)
}

func TestParseStringFunctions(t *testing.T) {
	q, err := ParseString("", `from users select replace(name, "\\d+", "#"), regex(email, "@(.*)$")`)
	require.NoError(t, err)

	rep, ok := q.Fields[0].Expr.(*ast.StringReplace)
	require.True(t, ok)
	assert.Equal(t, &ast.Literal{Value: `\d+`}, rep.Pattern)
	assert.Equal(t, &ast.Literal{Value: "#"}, rep.Replacement)

	reg, ok := q.Fields[1].Expr.(*ast.RegexExtract)
	require.True(t, ok)
	assert.Equal(t, &ast.FieldRef{Name: "email"}, reg.Expr)
}

func TestParsePercentile(t *testing.T) {
	q, err := ParseString("", `from orders select percentile(total, 0.95)`)
	require.NoError(t, err)

	pct := q.Fields[0].Expr.(*ast.Percentile)
	assert.Equal(t, 0.95, pct.P)

	_, err = ParseString("", `from orders select percentile(total, 95)`)
	assert.Error(t, err)
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown function":    `from orders select frobnicate(total)`,
		"unknown granularity": `from orders select trunc(created_at, fortnight)`,
		"mixed and/or":        `from orders select id where a = 1 and b = 2 or c = 3`,
		"bad date literal":    `from orders select id where d = date "2024-13-99"`,
		"star outside count":  `from orders select sum(*)`,
		"missing select":      `from orders`,
		"bad interval unit":   `from orders select created_at + interval 1 fortnight`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseString("", src)
			assert.Error(t, err)
		})
	}
}

func TestWriteErrorEchoesSourceLine(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	src := "from orders\nselect trunc(created_at quarter)\n"
	_, err := ParseString("bad.query", src)
	require.Error(t, err)

	var buf bytes.Buffer
	WriteError(&buf, src, err)
	out := buf.String()
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "select trunc(created_at quarter)")
	assert.Contains(t, out, "^")
}
