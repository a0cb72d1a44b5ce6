//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Dialect identifies a supported SQL dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

// DetectDialect infers the dialect from a connection string.
func DetectDialect(connString string) (Dialect, error) {
	lower := strings.ToLower(connString)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return Postgres, nil
	case strings.HasPrefix(lower, "mysql://"):
		return MySQL, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "sqlite3://"),
		strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return SQLite, nil
	case connString == "":
		return "", fmt.Errorf("empty connection string")
	default:
		return "", fmt.Errorf("unrecognized connection string scheme: %s", redact(connString))
	}
}

// Placeholder returns the bind parameter format for the dialect.
func (d Dialect) Placeholder() sq.PlaceholderFormat {
	if d == Postgres {
		return sq.Dollar
	}
	return sq.Question
}

// Builder returns a squirrel statement builder for the dialect.
func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

// Quote quotes an identifier so mixed-case table and column names survive.
func (d Dialect) Quote(ident string) string {
	if d == MySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// QuoteAll quotes every identifier in idents.
func (d Dialect) QuoteAll(idents []string) []string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = d.Quote(id)
	}
	return out
}

// redact hides the password portion of a URL-style connection string.
func redact(connString string) string {
	at := strings.LastIndex(connString, "@")
	scheme := strings.Index(connString, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return connString
	}
	creds := connString[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		return connString[:scheme+3] + creds[:colon] + ":***" + connString[at:]
	}
	return connString
}
