package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

// sqliteDSN maps sqlite://path (or a bare file: DSN) to a go-sqlite3 DSN
// with foreign key enforcement switched on.
func sqliteDSN(connString string) (string, error) {
	dsn := connString
	for _, prefix := range []string{"sqlite://", "sqlite3://"} {
		if len(dsn) >= len(prefix) && strings.EqualFold(dsn[:len(prefix)], prefix) {
			dsn = dsn[len(prefix):]
			break
		}
	}
	if dsn == "" {
		return "", fmt.Errorf("database path is required in connection string")
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk=") {
		dsn += sep + "_foreign_keys=on"
	}
	return dsn, nil
}

func openSQLite(ctx context.Context, connString string) (*sqlSink, error) {
	dsn, err := sqliteDSN(connString)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases alive and serializes
	// writers.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("dialect", string(SQLite)).
		Str("path", dsn).
		Msg("Connected to database")

	return &sqlSink{
		db:       conn,
		dialect:  SQLite,
		truncate: truncateSQLite,
	}, nil
}

// truncateSQLite deletes every row; SQLite has no TRUNCATE statement.
func truncateSQLite(ctx context.Context, conn *sql.Conn, tables []string) error {
	stmts := make([]string, len(tables))
	for i, t := range tables {
		stmts[i] = "DELETE FROM " + SQLite.Quote(t)
	}
	return withChecksDisabled(ctx, conn,
		"PRAGMA foreign_keys = OFF", "PRAGMA foreign_keys = ON", stmts)
}
