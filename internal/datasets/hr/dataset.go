//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package hr implements the HR analytics dataset: a star schema of
// employee dimensions and monthly employee snapshots.
package hr

import (
	"github.com/pgEdge/pgedge-seedgen/internal/datasets"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/pipeline"
)

// Name is the dataset name used on the command line.
const Name = "hr"

func init() {
	datasets.Register(New())
}

// Dataset implements the HR analytics dataset.
type Dataset struct{}

// New creates a new HR dataset.
func New() *Dataset {
	return &Dataset{}
}

// Name returns the dataset name.
func (d *Dataset) Name() string {
	return Name
}

// Description returns a human-readable description.
func (d *Dataset) Description() string {
	return "HR analytics star schema - employees of an Egyptian company " +
		"with monthly snapshots, training attendance and recruitment facts"
}

// Tables returns the table definitions in export order.
func (d *Dataset) Tables() []db.Table {
	return tables
}

// Volumes returns the default row counts.
func (d *Dataset) Volumes() []pipeline.Volume {
	return []pipeline.Volume{
		{Table: TableDate, Rows: len(analysisMonths()), Derived: true},
		{Table: TableDepartment, Rows: len(departments), Derived: true},
		{Table: TableJobRole, Rows: len(jobRoles), Derived: true},
		{Table: TableLocation, Rows: len(locations), Derived: true},
		{Table: TableEducation, Rows: len(educationLevels), Derived: true},
		{Table: TableRecruitmentSource, Rows: len(recruitmentSources), Derived: true},
		{Table: TableTraining, Rows: len(trainings), Derived: true},
		{Table: TablePerformance, Rows: performanceLevels, Derived: true},
		{Table: TableEmployee, Rows: 1000},
		{Table: TableSnapshot, Derived: true},
		{Table: TableAttendance, Rows: 3000},
		{Table: TableRecruitment, Derived: true},
	}
}

// Stages returns the generation stages.
func (d *Dataset) Stages() []pipeline.Stage {
	return stages()
}

// DefaultOutputDir returns the default export directory.
func (d *Dataset) DefaultOutputDir() string {
	return "hr_analytics_csv"
}
