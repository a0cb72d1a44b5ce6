package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-seedgen/internal/datasets"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/export"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

var exportOutputDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a seeded dataset to CSV",
	Long: `Write one <table>.csv per table of the specified dataset. The output
directory is removed and recreated on every export.

Example:
  pgedge-seedgen export --dataset hr --connection "postgres://..."
  pgedge-seedgen export --dataset insurance --output-dir /tmp/insurance`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "",
		"CSV output directory (default: dataset specific)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportOutputDir != "" {
		cfg.Export.OutputDir = exportOutputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	ds, sink, err := openDataset(ctx)
	if err != nil {
		return err
	}
	defer sink.Close()

	// Check that the database holds this dataset
	meta, err := db.GetAllMetadata(ctx, sink)
	if err != nil || meta["dataset"] == "" {
		return fmt.Errorf(
			"database has not been seeded; run 'pgedge-seedgen seed' first")
	}
	if meta["dataset"] != ds.Name() {
		return fmt.Errorf(
			"database was seeded with '%s' but '%s' was specified; "+
				"re-run with --dataset=%s",
			meta["dataset"], ds.Name(), meta["dataset"])
	}
	logging.Info().
		Str("run_id", meta["run_id"]).
		Str("seeded_at", meta["seeded_at"]).
		Msg("Found seeded dataset")

	return exportDataset(ctx, sink, ds)
}

func exportDataset(ctx context.Context, sink db.Sink, ds datasets.Dataset) error {
	dir := cfg.Export.OutputDir
	if dir == "" {
		dir = ds.DefaultOutputDir()
	}

	logging.Info().
		Str("dataset", ds.Name()).
		Str("dir", dir).
		Msg("Exporting dataset")

	_, err := export.Run(ctx, sink, ds.Tables(), dir)
	return err
}
