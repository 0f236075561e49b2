// Package ast defines the abstract query representation (the query AST)
// that the dialect adapter compiles into engine-specific SQL.
package ast

// Node represents a query AST node.
type Node interface {
	Type() NodeType
}

// NodeType represents the type of query node.
type NodeType string

const (
	NodeTypeSelect        NodeType = "Select"
	NodeTypeTableRef      NodeType = "TableRef"
	NodeTypeFieldRef      NodeType = "FieldRef"
	NodeTypeLiteral       NodeType = "Literal"
	NodeTypeDateTrunc     NodeType = "DateTrunc"
	NodeTypeDateExtract   NodeType = "DateExtract"
	NodeTypeStringReplace NodeType = "StringReplace"
	NodeTypeRegexExtract  NodeType = "RegexExtract"
	NodeTypeMedian        NodeType = "Median"
	NodeTypePercentile    NodeType = "Percentile"
	NodeTypeIntervalAdd   NodeType = "IntervalAdd"
	NodeTypeAggregate     NodeType = "Aggregate"
)

// SelectQuery is the top-level abstract query shape.
type SelectQuery struct {
	Source  *TableRef
	Fields  []SelectField
	Where   *WhereClause
	GroupBy []Node
	OrderBy []OrderByClause
	Page    *Pagination
}

func (q *SelectQuery) Type() NodeType { return NodeTypeSelect }

// SelectField is one select-list entry. Alias may be empty for plain
// field references; other expressions receive a generated alias when
// none is supplied.
type SelectField struct {
	Expr  Node
	Alias string
}

// TableRef references the query's primary source table.
type TableRef struct {
	Schema string
	Name   string
}

func (t *TableRef) Type() NodeType { return NodeTypeTableRef }

// FieldRef references a column. Table may be empty for unqualified
// references; the dialect decides how those resolve.
type FieldRef struct {
	Table string
	Name  string
}

func (f *FieldRef) Type() NodeType { return NodeTypeFieldRef }

// Literal is a constant value. Temporal constants are carried as
// types.TemporalValue and routed through the dialect's codec.
type Literal struct {
	Value interface{}
}

func (l *Literal) Type() NodeType { return NodeTypeLiteral }

// DateTrunc truncates a temporal expression to a granularity.
type DateTrunc struct {
	Granularity Granularity
	Expr        Node
}

func (d *DateTrunc) Type() NodeType { return NodeTypeDateTrunc }

// DateExtract extracts a component of a temporal expression.
type DateExtract struct {
	Granularity Granularity
	Expr        Node
}

func (d *DateExtract) Type() NodeType { return NodeTypeDateExtract }

// StringReplace replaces every match of a pattern within Expr.
type StringReplace struct {
	Expr        Node
	Pattern     Node
	Replacement Node
}

func (s *StringReplace) Type() NodeType { return NodeTypeStringReplace }

// RegexExtract extracts the first match of a pattern from Expr.
type RegexExtract struct {
	Expr    Node
	Pattern Node
}

func (r *RegexExtract) Type() NodeType { return NodeTypeRegexExtract }

// Median is the median aggregate over Expr.
type Median struct {
	Expr Node
}

func (m *Median) Type() NodeType { return NodeTypeMedian }

// Percentile is the p-th percentile aggregate over Expr, 0 <= P <= 1.
type Percentile struct {
	Expr Node
	P    float64
}

func (p *Percentile) Type() NodeType { return NodeTypePercentile }

// IntervalAdd shifts a temporal expression by a signed whole number of
// units. The unit is emitted as a bare SQL token, never bound as a
// parameter, so it is validated against the closed IntervalUnit set.
type IntervalAdd struct {
	Expr   Node
	Amount int
	Unit   IntervalUnit
}

func (i *IntervalAdd) Type() NodeType { return NodeTypeIntervalAdd }

// Aggregate is a plain aggregate function application.
type Aggregate struct {
	Func AggregateFunc
	Expr Node // nil means COUNT(*)
}

func (a *Aggregate) Type() NodeType { return NodeTypeAggregate }

// AggregateFunc names a plain aggregate.
type AggregateFunc string

const (
	AggCount AggregateFunc = "count"
	AggSum   AggregateFunc = "sum"
	AggAvg   AggregateFunc = "avg"
	AggMin   AggregateFunc = "min"
	AggMax   AggregateFunc = "max"
)

// WhereClause represents filtering conditions joined by a logical operator.
type WhereClause struct {
	Conditions []Condition
	Operator   LogicalOperator
}

// Condition represents a single filter condition.
type Condition struct {
	Left     Node
	Operator ComparisonOperator
	Right    Node
}

// ComparisonOperator represents comparison operators.
type ComparisonOperator string

const (
	OpEquals         ComparisonOperator = "="
	OpNotEquals      ComparisonOperator = "<>"
	OpGreaterThan    ComparisonOperator = ">"
	OpLessThan       ComparisonOperator = "<"
	OpGreaterOrEqual ComparisonOperator = ">="
	OpLessOrEqual    ComparisonOperator = "<="
)

// LogicalOperator represents logical operators joining conditions.
type LogicalOperator string

const (
	OpAND LogicalOperator = "AND"
	OpOR  LogicalOperator = "OR"
)

// OrderByClause represents ordering.
type OrderByClause struct {
	Expr      Node
	Direction SortDirection
}

// SortDirection represents sort direction.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Pagination is an offset-style pagination directive. Page is 1-based.
type Pagination struct {
	ItemsPerPage int
	Page         int
}

// Offset returns the number of leading rows the page skips.
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.ItemsPerPage
}
