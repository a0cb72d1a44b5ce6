//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package export writes seeded tables to CSV files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

// File describes one exported table.
type File struct {
	Table string
	Path  string
	Rows  int64
}

// Run removes and recreates dir, then writes one <table>.csv per table in
// the given order. Each file starts with a header row of column names. The
// first failure aborts the export.
func Run(ctx context.Context, sink db.Sink, tables []db.Table, dir string) ([]File, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	start := time.Now()
	files := make([]File, 0, len(tables))
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		path := filepath.Join(dir, t.Name+".csv")
		rows, err := writeTable(ctx, sink, t, path)
		if err != nil {
			return files, fmt.Errorf("failed to export %s: %w", t.Name, err)
		}
		logging.Info().
			Str("table", t.Name).
			Int64("rows", rows).
			Str("file", path).
			Msg("Exported table")
		files = append(files, File{Table: t.Name, Path: path, Rows: rows})
	}

	logging.Info().
		Int("tables", len(files)).
		Str("dir", dir).
		Dur("duration", time.Since(start)).
		Msg("Export complete")
	return files, nil
}

func writeTable(ctx context.Context, sink db.Sink, t db.Table, path string) (rows int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	columns := t.ColumnNames()
	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return 0, err
	}

	d := sink.Dialect()
	query := d.Builder().
		Select(d.QuoteAll(columns)...).
		From(d.Quote(t.Name))
	result, err := db.QueryBuilder(ctx, sink, query)
	if err != nil {
		return 0, err
	}

	record := make([]string, len(columns))
	err = db.ForEach(result, func(values []any) error {
		for i, v := range values {
			record[i] = db.FormatCSV(v)
		}
		rows++
		return w.Write(record)
	})
	if err != nil {
		return rows, err
	}

	w.Flush()
	return rows, w.Error()
}
