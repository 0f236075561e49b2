// Package queryfile parses query documents: the small text format the
// CLI reads abstract queries from. A document names a source table, a
// select list and optional where/group/order/page clauses; it is parsed
// into the query AST, never into SQL.
package queryfile

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/datagrove-io/impala-dialect/query/ast"
)

// Document is the raw parse tree of a query document.
type Document struct {
	Pos lexer.Position

	From    *FromClause    `parser:"@@"`
	Select  *SelectClause  `parser:"@@"`
	Where   *WhereClause   `parser:"@@?"`
	GroupBy *GroupByClause `parser:"@@?"`
	OrderBy *OrderByClause `parser:"@@?"`
	Page    *PageClause    `parser:"@@?"`
}

// FromClause names the source table, optionally schema-qualified.
type FromClause struct {
	Table *TableName `parser:"\"from\" @@"`
}

// TableName is `name` or `schema.name`.
type TableName struct {
	First  string `parser:"@Ident"`
	Second string `parser:"(\".\" @Ident)?"`
}

// SelectClause is the comma-separated select list.
type SelectClause struct {
	Items []*SelectItem `parser:"\"select\" @@ (\",\" @@)*"`
}

// SelectItem is one select-list expression with an optional alias.
type SelectItem struct {
	Expr  *Expr  `parser:"@@"`
	Alias string `parser:"(\"as\" @Ident)?"`
}

// Expr is a primary expression with an optional interval shift suffix.
type Expr struct {
	Primary  *Primary        `parser:"@@"`
	Interval *IntervalSuffix `parser:"@@?"`
}

// IntervalSuffix is `+ interval N unit` or `- interval N unit`.
type IntervalSuffix struct {
	Sign   string `parser:"@(\"+\" | \"-\")"`
	Amount int    `parser:"\"interval\" @Number"`
	Unit   string `parser:"@Ident"`
}

// Primary is a function call, temporal literal, string, number or
// column reference.
type Primary struct {
	Call     *Call        `parser:"@@"`
	Temporal *TemporalLit `parser:"| @@"`
	String   *string      `parser:"| @String"`
	Number   *float64     `parser:"| @Number"`
	Field    *FieldName   `parser:"| @@"`
}

// Call is a function application.
type Call struct {
	Pos lexer.Position

	Name string `parser:"@Ident \"(\""`
	Args []*Arg `parser:"(@@ (\",\" @@)*)? \")\""`
}

// Arg is a call argument; `*` is only meaningful for count.
type Arg struct {
	Star bool  `parser:"@\"*\""`
	Expr *Expr `parser:"| @@"`
}

// TemporalLit is `date "2006-01-02"` or `timestamp "2006-01-02 15:04:05"`.
type TemporalLit struct {
	Pos lexer.Position

	Kind  string `parser:"@(\"date\" | \"timestamp\")"`
	Value string `parser:"@String"`
}

// FieldName is `column` or `table.column`.
type FieldName struct {
	First  string `parser:"@Ident"`
	Second string `parser:"(\".\" @Ident)?"`
}

// WhereClause is a flat condition list joined by and/or.
type WhereClause struct {
	First *Cond       `parser:"\"where\" @@"`
	Rest  []*CondRest `parser:"@@*"`
}

// CondRest is one `and cond` / `or cond` continuation.
type CondRest struct {
	Op   string `parser:"@(\"and\" | \"or\")"`
	Cond *Cond  `parser:"@@"`
}

// Cond is a single comparison.
type Cond struct {
	Left  *Expr  `parser:"@@"`
	Op    string `parser:"@Op"`
	Right *Expr  `parser:"@@"`
}

// GroupByClause lists grouping expressions.
type GroupByClause struct {
	Exprs []*Expr `parser:"\"group\" \"by\" @@ (\",\" @@)*"`
}

// OrderByClause lists ordering expressions.
type OrderByClause struct {
	Items []*OrderItem `parser:"\"order\" \"by\" @@ (\",\" @@)*"`
}

// OrderItem is one ordering expression with an optional direction.
type OrderItem struct {
	Expr *Expr  `parser:"@@"`
	Dir  string `parser:"@(\"asc\" | \"desc\")?"`
}

// PageClause is `page N by M`: 1-based page number, items per page.
type PageClause struct {
	Page  int `parser:"\"page\" @Number"`
	Items int `parser:"\"by\" @Number"`
}

// parser is the participle parser instance.
var parser = participle.MustBuild[Document](
	participle.Lexer(queryLexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse parses a query document from an io.Reader and converts it to
// the query AST.
func Parse(filename string, r io.Reader) (*ast.SelectQuery, error) {
	doc, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return convertDocument(doc)
}

// ParseString parses a query document from a string.
func ParseString(filename, input string) (*ast.SelectQuery, error) {
	return Parse(filename, strings.NewReader(input))
}
