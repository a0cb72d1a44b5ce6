// Package insurance implements the insurance dataset: branches, agents,
// customers and their policies, with claims and payments against them.
package insurance

import (
	"github.com/pgEdge/pgedge-seedgen/internal/datasets"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/pipeline"
)

// Name is the dataset name used on the command line.
const Name = "insurance"

func init() {
	datasets.Register(New())
}

// Dataset implements the insurance dataset.
type Dataset struct{}

// New creates a new insurance dataset.
func New() *Dataset {
	return &Dataset{}
}

// Name returns the dataset name.
func (d *Dataset) Name() string {
	return Name
}

// Description returns a human-readable description.
func (d *Dataset) Description() string {
	return "Insurance company - customers, policies with per-category details, " +
		"claims adjudicated by incident-year severity and payments"
}

// Tables returns the table definitions in export order.
func (d *Dataset) Tables() []db.Table {
	return tables
}

// Volumes returns the default row counts. Policy details get exactly one
// row per policy, so their size follows the policies table.
func (d *Dataset) Volumes() []pipeline.Volume {
	return []pipeline.Volume{
		{Table: TableBranches, Rows: 50, Fixed: true},
		{Table: TableAgents, Rows: 500},
		{Table: TableProducts, Rows: 20, Fixed: true},
		{Table: TableCustomers, Rows: 50000},
		{Table: TablePolicies, Rows: 120000},
		{Table: TableAutoDetails, Derived: true},
		{Table: TableHomeDetails, Derived: true},
		{Table: TableLifeDetails, Derived: true},
		{Table: TableHealthDetails, Derived: true},
		{Table: TableClaims, Rows: 20000},
		{Table: TablePayments, Rows: 300000},
	}
}

// Stages returns the generation stages.
func (d *Dataset) Stages() []pipeline.Stage {
	return stages()
}

// DefaultOutputDir returns the default export directory.
func (d *Dataset) DefaultOutputDir() string {
	return "insurance_dataset_csv"
}
