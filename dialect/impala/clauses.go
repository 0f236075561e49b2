package impala

import (
	"fmt"
	"strings"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
)

const (
	// rowNumberColumn is the synthetic column the pagination rewrite adds.
	rowNumberColumn = "__rownum__"
	// pageTableAlias names the derived table; the engine rejects
	// unaliased derived tables.
	pageTableAlias = "__page__"
)

// ApplyPagination renders the final statement text with pagination.
//
// The engine has no OFFSET clause. Page one compiles to a plain LIMIT.
// Later pages wrap the statement as a derived table that adds a
// row_number() window column ordered exactly as the original ORDER BY,
// then filter on that column from the outside. The outer query carries
// no ORDER BY of its own: the inner ordering is the intended one and
// must not be applied twice.
func (d *Dialect) ApplyPagination(st *sqlgen.Statement, page *ast.Pagination) (string, error) {
	if page == nil {
		return sqlgen.RenderSelect(st), nil
	}
	if page.ItemsPerPage <= 0 || page.Page <= 0 {
		return "", fmt.Errorf("%w: items=%d page=%d", ErrInvalidPagination, page.ItemsPerPage, page.Page)
	}

	offset := page.Offset()
	if offset == 0 {
		return fmt.Sprintf("%s LIMIT %d", sqlgen.RenderSelect(st), page.ItemsPerPage), nil
	}

	if st.OrderBy == "" {
		return "", ErrPaginationNeedsOrdering
	}

	inner := *st
	inner.Columns = append(append([]string{}, st.Columns...),
		fmt.Sprintf("row_number() OVER (ORDER BY %s) AS %s", st.OrderBy, d.QuoteIdentifier(rowNumberColumn)))

	return fmt.Sprintf("SELECT %s FROM (%s) %s WHERE %s > %d LIMIT %d",
		strings.Join(st.OutNames, ", "),
		sqlgen.RenderSelect(&inner),
		d.QuoteIdentifier(pageTableAlias),
		d.QuoteIdentifier(rowNumberColumn),
		offset,
		page.ItemsPerPage,
	), nil
}
