package db

import (
	"context"
	"database/sql"
	"fmt"
)

type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// sqlSink adapts a database/sql handle to Sink. The MySQL and SQLite sinks
// share it and differ only in how they truncate.
type sqlSink struct {
	db       *sql.DB
	tx       *sql.Tx
	dialect  Dialect
	truncate func(ctx context.Context, conn *sql.Conn, tables []string) error
}

func (s *sqlSink) Dialect() Dialect { return s.dialect }

func (s *sqlSink) q() sqlQuerier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *sqlSink) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.q().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Some statements (DDL, PRAGMA) do not report affected rows.
		return 0, nil
	}
	return n, nil
}

func (s *sqlSink) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.q().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	return &sqlRows{rows: rows, cols: cols}, nil
}

func (s *sqlSink) Begin(ctx context.Context) error {
	if s.tx != nil {
		return fmt.Errorf("transaction already in progress")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	s.tx = tx
	return nil
}

func (s *sqlSink) Commit(ctx context.Context) error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit()
}

func (s *sqlSink) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	tx := s.tx
	s.tx = nil
	return tx.Rollback()
}

// Truncate runs on one dedicated connection so the session-level switch
// that relaxes foreign key checks applies to every statement of the reset.
func (s *sqlSink) Truncate(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	if s.tx != nil {
		return fmt.Errorf("cannot truncate inside a transaction on %s", s.dialect)
	}
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return s.truncate(ctx, conn, tables)
}

func (s *sqlSink) Close() {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
	_ = s.db.Close()
}

// withChecksDisabled runs stmts between the given off/on switches and always
// tries to restore checks.
func withChecksDisabled(ctx context.Context, conn *sql.Conn, off, on string, stmts []string) (err error) {
	if _, err := conn.ExecContext(ctx, off); err != nil {
		return fmt.Errorf("failed to disable foreign key checks: %w", err)
	}
	defer func() {
		if _, restoreErr := conn.ExecContext(ctx, on); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to re-enable foreign key checks: %w", restoreErr)
		}
	}()

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}
	return nil
}

type sqlRows struct {
	rows   *sql.Rows
	cols   []string
	closed bool
}

func (r *sqlRows) Columns() []string { return r.cols }

func (r *sqlRows) Next() bool { return r.rows.Next() }

func (r *sqlRows) Values() ([]any, error) {
	values := make([]any, len(r.cols))
	ptrs := make([]any, len(r.cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i, v := range values {
		values[i] = Normalize(v)
	}
	return values, nil
}

func (r *sqlRows) Err() error { return r.rows.Err() }

func (r *sqlRows) Close() {
	if !r.closed {
		r.closed = true
		_ = r.rows.Close()
	}
}
