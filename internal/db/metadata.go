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
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-seedgen/internal/logging"
	"github.com/pgEdge/pgedge-seedgen/pkg/version"
)

// MetadataTable records which dataset a database was seeded with.
var MetadataTable = Table{
	Name: "seedgen_metadata",
	Columns: []Column{
		Varchar("meta_key", 64).PK(),
		Text("meta_value"),
	},
}

// RunMetadata describes one seed run.
type RunMetadata struct {
	RunID      string
	Dataset    string
	RandomSeed uint64
	Today      time.Time
	SeededAt   time.Time
}

// NewRunMetadata stamps a run with a fresh run id.
func NewRunMetadata(dataset string, seed uint64, today time.Time) RunMetadata {
	return RunMetadata{
		RunID:      uuid.NewString(),
		Dataset:    dataset,
		RandomSeed: seed,
		Today:      today,
		SeededAt:   time.Now().UTC(),
	}
}

func (m RunMetadata) values() map[string]string {
	return map[string]string{
		"dataset":     m.Dataset,
		"run_id":      m.RunID,
		"version":     version.Short(),
		"random_seed": strconv.FormatUint(m.RandomSeed, 10),
		"today":       m.Today.Format("2006-01-02"),
		"seeded_at":   m.SeededAt.Format(time.RFC3339),
	}
}

// EnsureMetadata creates the metadata table if it doesn't exist.
func EnsureMetadata(ctx context.Context, s Sink) error {
	if _, err := s.Exec(ctx, MetadataTable.CreateSQL(s.Dialect())); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}
	return nil
}

// SaveMetadata replaces the stored metadata with the given run.
func SaveMetadata(ctx context.Context, s Sink, run RunMetadata) error {
	d := s.Dialect()
	b := d.Builder()

	if _, err := ExecBuilder(ctx, s, b.Delete(d.Quote(MetadataTable.Name))); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}

	values := run.values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	insert := b.Insert(d.Quote(MetadataTable.Name)).
		Columns(d.QuoteAll(MetadataTable.ColumnNames())...)
	for _, k := range keys {
		insert = insert.Values(k, values[k])
	}
	if _, err := ExecBuilder(ctx, s, insert); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Debug().
		Str("dataset", run.Dataset).
		Str("run_id", run.RunID).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key. A missing key
// yields an empty string and no error.
func GetMetadataValue(ctx context.Context, s Sink, key string) (string, error) {
	d := s.Dialect()
	query := d.Builder().
		Select(d.Quote("meta_value")).
		From(d.Quote(MetadataTable.Name)).
		Where(sq.Eq{d.Quote("meta_key"): key})

	rows, err := QueryBuilder(ctx, s, query)
	if err != nil {
		return "", err
	}

	var value string
	err = ForEach(rows, func(v []any) error {
		value = AsString(v[0])
		return nil
	})
	return value, err
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, s Sink) (map[string]string, error) {
	d := s.Dialect()
	query := d.Builder().
		Select(d.QuoteAll(MetadataTable.ColumnNames())...).
		From(d.Quote(MetadataTable.Name))

	rows, err := QueryBuilder(ctx, s, query)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]string)
	err = ForEach(rows, func(v []any) error {
		metadata[AsString(v[0])] = AsString(v[1])
		return nil
	})
	return metadata, err
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, s Sink) error {
	_, err := s.Exec(ctx, MetadataTable.DropSQL(s.Dialect()))
	return err
}
