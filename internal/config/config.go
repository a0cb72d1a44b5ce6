//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-seedgen.
// Configuration is loaded from config files and CLI flags. CLI flags take
// precedence over config file values. The only environment input is the
// optional connection string variable named by connection_env, which may
// also be supplied through a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DateLayout is the layout used for the simulated current date.
const DateLayout = "2006-01-02"

// Config holds all configuration for pgedge-seedgen.
type Config struct {
	// Connection is the database connection string. The scheme selects the
	// driver: postgres://, mysql:// or sqlite://.
	Connection string `mapstructure:"connection"`

	// ConnectionEnv names the environment variable consulted when
	// Connection is empty.
	ConnectionEnv string `mapstructure:"connection_env"`

	// EnvFile is loaded into the environment before ConnectionEnv is read.
	EnvFile string `mapstructure:"env_file"`

	// Dataset is the dataset to seed or export (hr, insurance).
	Dataset string `mapstructure:"dataset"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is console or json.
	LogFormat string `mapstructure:"log_format"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`

	// Export holds configuration for CSV export.
	Export ExportConfig `mapstructure:"export"`
}

// SeedConfig holds configuration for data generation.
type SeedConfig struct {
	// RandomSeed makes a run reproducible. Zero picks a seed from the clock.
	RandomSeed uint64 `mapstructure:"random_seed"`

	// Today is the simulated current date (YYYY-MM-DD) bounding all
	// generated dates.
	Today string `mapstructure:"today"`

	// Scale multiplies the default row counts of person and
	// transactional tables. Reference tables keep their fixed size.
	Scale float64 `mapstructure:"scale"`

	// BatchSize is the number of rows per multi-row insert.
	BatchSize int `mapstructure:"batch_size"`

	// ProgressInterval is how often to log progress (in generated records).
	ProgressInterval int64 `mapstructure:"progress_interval"`

	// DropExisting drops the dataset tables before seeding.
	DropExisting bool `mapstructure:"drop_existing"`

	// Counts overrides the row count of individual tables.
	Counts map[string]int `mapstructure:"counts"`
}

// ExportConfig holds configuration for CSV export.
type ExportConfig struct {
	// OutputDir overrides the dataset's default output folder.
	OutputDir string `mapstructure:"output_dir"`

	// AfterSeed runs an export once seeding commits.
	AfterSeed bool `mapstructure:"after_seed"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ConnectionEnv: "SEEDGEN_DATABASE_URL",
		EnvFile:       ".env",
		LogLevel:      "info",
		LogFormat:     "console",
		Seed: SeedConfig{
			Today:            "2025-12-20",
			Scale:            1.0,
			BatchSize:        500,
			ProgressInterval: 10000,
			DropExisting:     false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-seedgen.yaml
// 3. ~/.config/pgedge-seedgen/pgedge-seedgen.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-seedgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-seedgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ResolveConnection fills Connection from the environment when it was not
// given in the config file or on the command line.
func (c *Config) ResolveConnection() error {
	if c.Connection != "" {
		return nil
	}
	if c.EnvFile != "" {
		if err := godotenv.Load(c.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", c.EnvFile, err)
		}
	}
	if c.ConnectionEnv != "" {
		c.Connection = os.Getenv(c.ConnectionEnv)
	}
	return nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		if c.ConnectionEnv != "" {
			return fmt.Errorf("connection string is required (set --connection or %s)", c.ConnectionEnv)
		}
		return fmt.Errorf("connection string is required")
	}
	if c.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := c.TodayDate(); err != nil {
		return err
	}
	if c.Seed.Scale <= 0 {
		return fmt.Errorf("scale must be positive")
	}
	if c.Seed.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	if c.Seed.ProgressInterval < 1 {
		return fmt.Errorf("progress_interval must be at least 1")
	}
	for table, n := range c.Seed.Counts {
		if n < 0 {
			return fmt.Errorf("count for %s must be non-negative", table)
		}
	}
	return nil
}

// TodayDate parses the simulated current date.
func (c *Config) TodayDate() (time.Time, error) {
	today, err := time.Parse(DateLayout, c.Seed.Today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid today %q: expected YYYY-MM-DD", c.Seed.Today)
	}
	return today, nil
}

// CountOverrides returns the per-table count overrides keyed by lower-case
// table name. Config file keys arrive lower-cased while flags keep the
// user's spelling, so lookups must ignore case.
func (c *Config) CountOverrides() map[string]int {
	out := make(map[string]int, len(c.Seed.Counts))
	for table, n := range c.Seed.Counts {
		out[strings.ToLower(table)] = n
	}
	return out
}
