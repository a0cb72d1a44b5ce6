package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

// DefaultPoolConfig returns default connection pool configuration. Seeding
// is sequential, so the pool stays small.
func DefaultPoolConfig() *pgxpool.Config {
	config, _ := pgxpool.ParseConfig("")

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	return config
}

type pgQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresSink struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

// openPostgres establishes a connection pool to the PostgreSQL database.
func openPostgres(ctx context.Context, connString string, opts Options) (*postgresSink, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	defaults := DefaultPoolConfig()
	config.MaxConns = defaults.MaxConns
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	config.MinConns = min(defaults.MinConns, config.MaxConns)
	config.MaxConnLifetime = defaults.MaxConnLifetime
	config.MaxConnIdleTime = defaults.MaxConnIdleTime
	config.HealthCheckPeriod = defaults.HealthCheckPeriod

	logging.Debug().
		Str("host", config.ConnConfig.Host).
		Uint16("port", config.ConnConfig.Port).
		Str("database", config.ConnConfig.Database).
		Int32("max_conns", config.MaxConns).
		Msg("Connecting to database")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("dialect", string(Postgres)).
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Msg("Connected to database")

	return &postgresSink{pool: pool}, nil
}

func (s *postgresSink) Dialect() Dialect { return Postgres }

func (s *postgresSink) q() pgQuerier {
	if s.tx != nil {
		return s.tx
	}
	return s.pool
}

func (s *postgresSink) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := s.q().Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *postgresSink) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := s.q().Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &pgRows{rows: rows}, nil
}

func (s *postgresSink) Begin(ctx context.Context) error {
	if s.tx != nil {
		return fmt.Errorf("transaction already in progress")
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	s.tx = tx
	return nil
}

func (s *postgresSink) Commit(ctx context.Context) error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit(ctx)
}

func (s *postgresSink) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return ErrNoTransaction
	}
	tx := s.tx
	s.tx = nil
	return tx.Rollback(ctx)
}

// Truncate empties every table in one statement; CASCADE covers foreign
// keys from tables outside the list.
func (s *postgresSink) Truncate(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := s.q().Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE",
		quoteAll(Postgres, tables)))
	return err
}

func (s *postgresSink) Close() {
	if s.tx != nil {
		_ = s.tx.Rollback(context.Background())
		s.tx = nil
	}
	s.pool.Close()
}

type pgRows struct {
	rows pgx.Rows
}

func (r *pgRows) Columns() []string {
	fields := r.rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func (r *pgRows) Next() bool { return r.rows.Next() }

func (r *pgRows) Values() ([]any, error) {
	values, err := r.rows.Values()
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		values[i] = Normalize(v)
	}
	return values, nil
}

func (r *pgRows) Err() error { return r.rows.Err() }

func (r *pgRows) Close() { r.rows.Close() }
