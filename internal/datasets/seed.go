package datasets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
	"github.com/pgEdge/pgedge-seedgen/internal/pipeline"
)

// SeedOptions configures one seed run.
type SeedOptions struct {
	// RandomSeed seeds the faker. Zero picks a seed from the clock.
	RandomSeed uint64

	// Today bounds every generated date.
	Today time.Time

	// Scale multiplies the default volume of scalable tables.
	Scale float64

	// Counts overrides the row count of individual tables.
	Counts map[string]int

	// Batch controls insert batching and progress logging.
	Batch datagen.BatchInsertConfig

	// DropExisting drops the dataset's tables before recreating them, and
	// allows reseeding a database that holds another dataset.
	DropExisting bool
}

// SeedResult describes a completed run.
type SeedResult struct {
	Run    db.RunMetadata
	Report *pipeline.Report
}

// Seed recreates a dataset from scratch. Schema creation and truncation
// happen first; every stage and the metadata write then run in a single
// transaction so a failed run leaves the tables empty rather than half
// populated.
func Seed(ctx context.Context, sink db.Sink, ds Dataset, opts SeedOptions) (*SeedResult, error) {
	p, err := Build(ds)
	if err != nil {
		return nil, err
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	counts, err := pipeline.ResolveCounts(ds.Volumes(), scale, opts.Counts)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureMetadata(ctx, sink); err != nil {
		return nil, err
	}

	// Check if already seeded with a different dataset
	existing, err := db.GetMetadataValue(ctx, sink, "dataset")
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	if existing != "" && existing != ds.Name() {
		if !opts.DropExisting {
			return nil, fmt.Errorf(
				"database was seeded with '%s' but '%s' was specified; "+
					"use --drop-existing to reseed",
				existing, ds.Name())
		}
		logging.Warn().
			Str("existing_dataset", existing).
			Str("new_dataset", ds.Name()).
			Msg("Replacing existing dataset")
	}

	if opts.DropExisting {
		if err := DropSchema(ctx, sink, ds); err != nil {
			return nil, fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.EnsureMetadata(ctx, sink); err != nil {
			return nil, err
		}
	}

	if err := CreateSchema(ctx, sink, ds); err != nil {
		return nil, err
	}
	if err := Reset(ctx, sink, ds); err != nil {
		return nil, err
	}

	var faker *datagen.Faker
	if opts.RandomSeed == 0 {
		faker = datagen.NewFaker()
	} else {
		faker = datagen.NewFakerWithSeed(opts.RandomSeed)
	}

	today := datagen.DateOnly(opts.Today)
	run := db.NewRunMetadata(ds.Name(), faker.Seed(), today)
	env := pipeline.NewEnv(sink, faker, pipeline.Options{
		Today:  today,
		Now:    run.SeededAt,
		Batch:  opts.Batch,
		Counts: counts,
	})

	logging.Info().
		Str("dataset", ds.Name()).
		Str("run_id", run.RunID).
		Uint64("random_seed", run.RandomSeed).
		Str("today", today.Format("2006-01-02")).
		Strs("stages", p.Stages()).
		Msg("Seeding database")

	if err := sink.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	report, err := p.Run(ctx, env)
	if err == nil {
		err = db.SaveMetadata(ctx, sink, run)
	}
	if err != nil {
		// The run error matters more than a failed rollback.
		if rbErr := sink.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, db.ErrNoTransaction) {
			logging.Error().Err(rbErr).Msg("Failed to roll back")
		}
		return &SeedResult{Run: run, Report: report}, err
	}

	if err := sink.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	report.Log()
	logging.Info().
		Str("dataset", ds.Name()).
		Str("run_id", run.RunID).
		Msg("Seed complete")

	return &SeedResult{Run: run, Report: report}, nil
}
