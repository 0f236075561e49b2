// Package impala implements the dialect adapter for Apache Impala.
//
// Impala lacks several conveniences common SQL engines provide: there is
// no OFFSET clause, no QUARTER() function, no DATE type, timestamps are
// timezone-naive, and identifiers are quoted with backticks. This package
// rewrites abstract query clauses into Impala-legal SQL, emulates the
// missing primitives, and converts temporal values across the wire
// boundary where the driver's own binding is defective.
package impala

import (
	"fmt"
	"time"

	"github.com/datagrove-io/impala-dialect/query/ast"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
)

// Name is the dialect identifier the adapter registers under.
const Name = "impala"

// SourceTableAlias is the fixed alias bound to the query's primary
// source table. Rebinding every source table to the same alias keeps
// unqualified column references unambiguous even when the caller never
// supplies a qualified path.
const SourceTableAlias = "t1"

// Config holds the adapter's immutable configuration.
type Config struct {
	// ResultsLocation is the zone reattached to decoded result
	// timestamps, which the engine stores timezone-naive. It should be
	// set to the database's effective zone; nil falls back to the
	// process-local zone.
	ResultsLocation *time.Location
}

// Dialect is the Impala adapter. It is stateless across invocations and
// safe for concurrent use; all per-statement state lives in the
// compiler's scope.
type Dialect struct {
	loc *time.Location
}

// New creates the adapter with the process-local zone assumed for
// decoded timestamps.
func New() *Dialect {
	return NewWithConfig(Config{})
}

// NewWithConfig creates the adapter with explicit configuration.
func NewWithConfig(cfg Config) *Dialect {
	loc := cfg.ResultsLocation
	if loc == nil {
		loc = time.Local
	}
	return &Dialect{loc: loc}
}

// Name returns the dialect identifier.
func (d *Dialect) Name() string { return Name }

// QuoteIdentifier quotes an identifier Impala style, with backticks.
func (d *Dialect) QuoteIdentifier(name string) string {
	return sqlgen.QuoteWith(name, '`')
}

// RenderSourceTable renders the FROM target for the primary source
// table, always rebinding it to the fixed alias.
func (d *Dialect) RenderSourceTable(ref *ast.TableRef) (string, string) {
	qualified := d.QuoteIdentifier(ref.Name)
	if ref.Schema != "" {
		qualified = d.QuoteIdentifier(ref.Schema) + "." + qualified
	}
	return fmt.Sprintf("%s %s", qualified, d.QuoteIdentifier(SourceTableAlias)), SourceTableAlias
}

// SourceTableAlias returns the fixed source-table alias.
func (d *Dialect) SourceTableAlias() string { return SourceTableAlias }

// ResultsLocation returns the zone assumed for decoded timestamps.
func (d *Dialect) ResultsLocation() *time.Location { return d.loc }

var _ sqlgen.Dialect = (*Dialect)(nil)
