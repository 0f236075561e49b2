package impala

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
)

func pageStatement() *sqlgen.Statement {
	return &sqlgen.Statement{
		Columns:  []string{"`t1`.`id`", "`t1`.`total`"},
		OutNames: []string{"`id`", "`total`"},
		From:     "`analytics`.`orders` `t1`",
		OrderBy:  "`t1`.`created_at` DESC",
	}
}

func TestPaginationFirstPageIsPlainLimit(t *testing.T) {
	d := New()

	got, err := d.ApplyPagination(pageStatement(), &ast.Pagination{ItemsPerPage: 10, Page: 1})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT `t1`.`id`, `t1`.`total` FROM `analytics`.`orders` `t1` ORDER BY `t1`.`created_at` DESC LIMIT 10",
		got)
	assert.NotContains(t, got, "row_number")
}

func TestPaginationOffsetPageUsesRowNumberWindow(t *testing.T) {
	d := New()
	st := pageStatement()

	got, err := d.ApplyPagination(st, &ast.Pagination{ItemsPerPage: 10, Page: 3})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT `id`, `total` FROM ("+
			"SELECT `t1`.`id`, `t1`.`total`, row_number() OVER (ORDER BY `t1`.`created_at` DESC) AS `__rownum__` "+
			"FROM `analytics`.`orders` `t1` ORDER BY `t1`.`created_at` DESC"+
			") `__page__` WHERE `__rownum__` > 20 LIMIT 10",
		got)

	// The window ordering is the original ORDER BY rendering, verbatim.
	assert.Contains(t, got, "OVER (ORDER BY "+st.OrderBy+")")
	// The outer query must not re-apply ORDER BY.
	outer := got[strings.LastIndex(got, ")"):]
	assert.NotContains(t, outer, "ORDER BY")
}

func TestPaginationDoesNotMutateStatement(t *testing.T) {
	d := New()
	st := pageStatement()

	_, err := d.ApplyPagination(st, &ast.Pagination{ItemsPerPage: 5, Page: 2})
	require.NoError(t, err)
	assert.Len(t, st.Columns, 2)
}

func TestPaginationRejectsMalformedInput(t *testing.T) {
	d := New()

	for _, page := range []*ast.Pagination{
		{ItemsPerPage: 0, Page: 1},
		{ItemsPerPage: 10, Page: 0},
		{ItemsPerPage: -1, Page: 2},
		{ItemsPerPage: 10, Page: -3},
	} {
		_, err := d.ApplyPagination(pageStatement(), page)
		assert.ErrorIs(t, err, ErrInvalidPagination, "items=%d page=%d", page.ItemsPerPage, page.Page)
	}
}

func TestPaginationOffsetPageNeedsOrdering(t *testing.T) {
	d := New()
	st := pageStatement()
	st.OrderBy = ""

	_, err := d.ApplyPagination(st, &ast.Pagination{ItemsPerPage: 10, Page: 2})
	assert.ErrorIs(t, err, ErrPaginationNeedsOrdering)
}

func TestRenderSourceTableBindsFixedAlias(t *testing.T) {
	d := New()

	sql, alias := d.RenderSourceTable(&ast.TableRef{Schema: "analytics", Name: "orders"})
	assert.Equal(t, "`analytics`.`orders` `t1`", sql)
	assert.Equal(t, SourceTableAlias, alias)

	sql, _ = d.RenderSourceTable(&ast.TableRef{Name: "orders"})
	assert.Equal(t, "`orders` `t1`", sql)
}
