//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package db provides the relational data sink used by pgedge-seedgen.
// A Sink wraps one database connection (or a small pool) and routes every
// statement through the open transaction when there is one.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// ErrNoTransaction is returned by Commit and Rollback when Begin was not
// called first.
var ErrNoTransaction = errors.New("no transaction in progress")

// Rows is a forward-only cursor over a query result.
type Rows interface {
	// Columns returns the result column names.
	Columns() []string

	// Next advances to the next row.
	Next() bool

	// Values returns the current row as normalized Go values.
	Values() ([]any, error)

	// Err returns any error hit during iteration.
	Err() error

	// Close releases the cursor. It is safe to call more than once.
	Close()
}

// Sink is a relational store that accepts generated records.
type Sink interface {
	// Dialect reports the SQL dialect spoken by the sink.
	Dialect() Dialect

	// Exec runs a statement and returns the number of affected rows.
	Exec(ctx context.Context, sql string, args ...any) (int64, error)

	// Query runs a statement that returns rows.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)

	// Begin opens a transaction; later statements run inside it.
	Begin(ctx context.Context) error

	// Commit commits the open transaction.
	Commit(ctx context.Context) error

	// Rollback aborts the open transaction.
	Rollback(ctx context.Context) error

	// Truncate empties the given tables with referential checks relaxed
	// for the duration of the reset.
	Truncate(ctx context.Context, tables ...string) error

	// Close releases the underlying connection(s).
	Close()
}

// Options tunes how a sink is opened.
type Options struct {
	// MaxConns caps the connection pool. Zero keeps the driver default.
	MaxConns int32
}

// Open connects to the database named by connString. The scheme picks the
// driver.
func Open(ctx context.Context, connString string, opts Options) (Sink, error) {
	dialect, err := DetectDialect(connString)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case Postgres:
		return openPostgres(ctx, connString, opts)
	case MySQL:
		return openMySQL(ctx, connString, opts)
	case SQLite:
		return openSQLite(ctx, connString)
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
}

// ExecBuilder renders a squirrel statement and executes it.
func ExecBuilder(ctx context.Context, s Sink, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}
	return s.Exec(ctx, query, args...)
}

// QueryBuilder renders a squirrel select and runs it.
func QueryBuilder(ctx context.Context, s Sink, b sq.Sqlizer) (Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return s.Query(ctx, query, args...)
}

// ForEach calls fn for every row and closes rows when done.
func ForEach(rows Rows, fn func(values []any) error) error {
	defer rows.Close()

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return err
		}
		if err := fn(values); err != nil {
			return err
		}
	}
	return rows.Err()
}

func quoteAll(d Dialect, tables []string) string {
	return strings.Join(d.QuoteAll(tables), ", ")
}
