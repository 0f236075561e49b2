// Package client provides the runtime client that executes compiled
// queries against an Impala endpoint over database/sql.
package client

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/bippio/go-impala" // Impala driver

	"github.com/datagrove-io/impala-dialect/dialect/impala"
	"github.com/datagrove-io/impala-dialect/internal/debug"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
)

// Client is the database client.
type Client struct {
	db      *sql.DB
	dialect *impala.Dialect
}

// Open creates a client for the given connection details.
func Open(details impala.ConnectionDetails, d *impala.Dialect) (*Client, error) {
	if d == nil {
		d = impala.New()
	}
	dsn := details.DriverDSN()
	db, err := sql.Open("impala", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return &Client{db: db, dialect: d}, nil
}

// NewFromDB creates a client from an existing database connection.
func NewFromDB(db *sql.DB, d *impala.Dialect) *Client {
	if d == nil {
		d = impala.New()
	}
	return &Client{db: db, dialect: d}
}

// Connect establishes the database connection.
func (c *Client) Connect(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Disconnect closes the database connection.
func (c *Client) Disconnect() error {
	return c.db.Close()
}

// DB returns the underlying database connection.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Query executes a compiled query and collects its result set.
// Timestamp columns are decoded through the dialect's temporal codec.
func (c *Client) Query(ctx context.Context, q *sqlgen.Query) (*Result, error) {
	debug.Debug("executing query", "sql", q.SQL, "args", len(q.Args))
	for i, arg := range q.Args {
		debug.Debug("bound parameter", "index", i, "value", arg)
	}

	rows, err := c.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return collectRows(rows, c.dialect)
}

// Exec executes a compiled statement that returns no rows.
func (c *Client) Exec(ctx context.Context, q *sqlgen.Query) error {
	debug.Debug("executing statement", "sql", q.SQL, "args", len(q.Args))
	if _, err := c.db.ExecContext(ctx, q.SQL, q.Args...); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}
