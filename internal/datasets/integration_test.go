//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration

// Integration tests for all datasets.
// Run with: go test -tags=integration ./internal/datasets/...
// Requires PostgreSQL to be available.
// Set PGEDGE_TEST_CONN environment variable to override connection string.

package datasets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/datasets"
	"github.com/pgEdge/pgedge-seedgen/internal/datasets/hr"
	"github.com/pgEdge/pgedge-seedgen/internal/datasets/insurance"
	"github.com/pgEdge/pgedge-seedgen/internal/export"
	"github.com/pgEdge/pgedge-seedgen/internal/testutil"
)

// TestHRIntegration seeds and exports the hr dataset on PostgreSQL.
func TestHRIntegration(t *testing.T) {
	runDatasetIntegrationTest(t, hr.Name, map[string]int{
		hr.TableEmployee:   200,
		hr.TableAttendance: 400,
	})
}

// TestInsuranceIntegration seeds and exports the insurance dataset on
// PostgreSQL.
func TestInsuranceIntegration(t *testing.T) {
	runDatasetIntegrationTest(t, insurance.Name, map[string]int{
		insurance.TableAgents:    40,
		insurance.TableCustomers: 500,
		insurance.TablePolicies:  800,
		insurance.TableClaims:    300,
		insurance.TablePayments:  1000,
	})
}

// runDatasetIntegrationTest runs a full integration test for a dataset.
func runDatasetIntegrationTest(t *testing.T, name string, counts map[string]int) {
	// Check if PostgreSQL is available
	baseConnStr := testutil.SkipIfNoPostgres(t)

	ds, err := datasets.Get(name)
	if err != nil {
		t.Fatalf("Failed to get dataset: %v", err)
	}

	// Create test database
	testConnStr := testutil.CreateTestDB(t, baseConnStr, name)
	dbName := testutil.GetDBNameFromConnStr(testConnStr)

	cleanup := testutil.NewTestCleanup(t, baseConnStr, dbName)
	t.Cleanup(cleanup.Cleanup)

	sink := testutil.ConnectTestDB(t, testConnStr)
	cleanup.SetSink(sink)

	ctx := context.Background()
	opts := datasets.SeedOptions{
		RandomSeed: 42,
		Today:      datagen.Date(2025, 12, 20),
		Counts:     counts,
		Batch:      datagen.BatchInsertConfig{BatchSize: 250, ProgressInterval: 1000},
	}

	var first map[string]int64
	t.Run("Seed", func(t *testing.T) {
		result, err := datasets.Seed(ctx, sink, ds, opts)
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		first = make(map[string]int64)
		for _, table := range datasets.TableNames(ds) {
			n := testutil.CountRows(t, sink, table)
			if n != result.Report.Rows(table) {
				t.Errorf("%s has %d rows, report says %d", table, n, result.Report.Rows(table))
			}
			first[table] = n
		}
	})

	// Reseeding with the same seed truncates and reproduces the data.
	t.Run("Reseed", func(t *testing.T) {
		if _, err := datasets.Seed(ctx, sink, ds, opts); err != nil {
			t.Fatalf("Reseed failed: %v", err)
		}
		for table, n := range first {
			if got := testutil.CountRows(t, sink, table); got != n {
				t.Errorf("%s has %d rows after reseed, want %d", table, got, n)
			}
		}
	})

	t.Run("Export", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), ds.DefaultOutputDir())
		files, err := export.Run(ctx, sink, ds.Tables(), dir)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		if len(files) != len(ds.Tables()) {
			t.Fatalf("Exported %d files, want %d", len(files), len(ds.Tables()))
		}
		for _, f := range files {
			if f.Rows != first[f.Table] {
				t.Errorf("%s exported %d rows, want %d", f.Table, f.Rows, first[f.Table])
			}
			if _, err := os.Stat(f.Path); err != nil {
				t.Errorf("Missing %s: %v", f.Path, err)
			}
		}
	})
}
