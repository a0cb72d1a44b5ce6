//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datasets defines the dataset interface and the helpers shared by
// the dataset implementations.
package datasets

import (
	"context"
	"fmt"
	"slices"

	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
	"github.com/pgEdge/pgedge-seedgen/internal/pipeline"
)

// Dataset defines the interface that all datasets must implement.
type Dataset interface {
	// Name returns the dataset name used on the command line.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Tables returns the table definitions in export order. Parents come
	// before the tables that reference them.
	Tables() []db.Table

	// Volumes returns the default row count of every table.
	Volumes() []pipeline.Volume

	// Stages returns the generation stages in execution order.
	Stages() []pipeline.Stage

	// DefaultOutputDir is the export directory used when none is
	// configured.
	DefaultOutputDir() string
}

// TableNames returns the dataset's table names in export order.
func TableNames(ds Dataset) []string {
	tables := ds.Tables()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

// Build validates the dataset's stage ordering.
func Build(ds Dataset) (*pipeline.Pipeline, error) {
	p, err := pipeline.New(ds.Tables(), ds.Stages()...)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pipeline: %w", ds.Name(), err)
	}
	return p, nil
}

// CreateSchema creates the dataset's tables if they do not exist.
func CreateSchema(ctx context.Context, sink db.Sink, ds Dataset) error {
	d := sink.Dialect()
	for _, t := range ds.Tables() {
		if _, err := sink.Exec(ctx, t.CreateSQL(d)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}
	logging.Info().
		Str("dataset", ds.Name()).
		Int("tables", len(ds.Tables())).
		Msg("Schema ready")
	return nil
}

// DropSchema drops the dataset's tables, children first, together with the
// run metadata.
func DropSchema(ctx context.Context, sink db.Sink, ds Dataset) error {
	tables := slices.Clone(ds.Tables())
	slices.Reverse(tables)

	d := sink.Dialect()
	for _, t := range tables {
		if _, err := sink.Exec(ctx, t.DropSQL(d)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", t.Name, err)
		}
	}
	if err := db.DropMetadata(ctx, sink); err != nil {
		return err
	}
	logging.Info().Str("dataset", ds.Name()).Msg("Schema dropped")
	return nil
}

// Reset empties every table of the dataset.
func Reset(ctx context.Context, sink db.Sink, ds Dataset) error {
	if err := sink.Truncate(ctx, TableNames(ds)...); err != nil {
		return fmt.Errorf("failed to truncate %s tables: %w", ds.Name(), err)
	}
	return nil
}
