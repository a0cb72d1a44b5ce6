//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-seedgen.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-seedgen/internal/config"
	"github.com/pgEdge/pgedge-seedgen/internal/datasets"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
	"github.com/pgEdge/pgedge-seedgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	dataset    string
	logLevel   string
	logFormat  string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-seedgen",
		Short: "Synthetic dataset seeder and CSV exporter",
		Long: `pgedge-seedgen creates the schema of a synthetic dataset, populates it
with realistic, referentially consistent data and exports every table
to CSV.

Two datasets are available: an HR analytics star schema and an
insurance operations schema. PostgreSQL, MySQL and SQLite are supported
as targets; the connection string scheme selects the driver.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-seedgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"database connection string (postgres://, mysql:// or sqlite://)")
	rootCmd.PersistentFlags().StringVar(&dataset, "dataset", "",
		"dataset (hr, insurance)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format (console, json)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if dataset != "" {
		cfg.Dataset = dataset
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	return cfg.ResolveConnection()
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openDataset looks up the configured dataset and connects to the target.
func openDataset(ctx context.Context) (datasets.Dataset, db.Sink, error) {
	ds, err := datasets.Get(cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}
	sink, err := db.Open(ctx, cfg.Connection, db.Options{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return ds, sink, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List available datasets",
	Long: `List all datasets that can be seeded, with their tables in export
order and the default CSV output folder.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available datasets:")
		for _, ds := range datasets.All() {
			cmd.Println()
			cmd.Printf("  %-10s - %s\n", ds.Name(), ds.Description())
			cmd.Printf("  %-10s   output: %s\n", "", ds.DefaultOutputDir())
			cmd.Printf("  %-10s   tables: %d\n", "", len(ds.Tables()))
			for _, v := range ds.Volumes() {
				switch {
				case v.Derived:
					cmd.Printf("      %-26s derived\n", v.Table)
				case v.Fixed:
					cmd.Printf("      %-26s %d (fixed)\n", v.Table, v.Rows)
				default:
					cmd.Printf("      %-26s %d\n", v.Table, v.Rows)
				}
			}
		}
		cmd.Println()
		cmd.Println("Use 'pgedge-seedgen seed --dataset <name>' to populate a database.")
	},
}
