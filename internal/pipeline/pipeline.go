//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline runs dataset generation as an ordered list of stages.
// Each stage declares the tables it reads and writes; the pipeline refuses
// an ordering in which a stage reads, or references through a foreign key,
// a table that no earlier stage has produced.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

// Stage is one generation step.
type Stage struct {
	// Name identifies the stage in logs and reports.
	Name string

	// Inputs are tables the stage reads back from the sink.
	Inputs []string

	// Outputs are tables the stage writes, parents before children.
	Outputs []string

	// Run generates the stage's records.
	Run func(ctx context.Context, env *Env) error
}

// Pipeline is a validated, ordered list of stages.
type Pipeline struct {
	stages []Stage
	tables map[string]db.Table
}

// New validates the stage ordering against the table definitions.
func New(tables []db.Table, stages ...Stage) (*Pipeline, error) {
	defs := make(map[string]db.Table, len(tables))
	for _, t := range tables {
		defs[t.Name] = t
	}

	produced := make(map[string]string) // table -> stage
	names := make(map[string]bool)

	for _, s := range stages {
		if s.Name == "" {
			return nil, fmt.Errorf("stage has no name")
		}
		if names[s.Name] {
			return nil, fmt.Errorf("duplicate stage %q", s.Name)
		}
		names[s.Name] = true
		if s.Run == nil {
			return nil, fmt.Errorf("stage %q has no Run function", s.Name)
		}
		if len(s.Outputs) == 0 {
			return nil, fmt.Errorf("stage %q declares no outputs", s.Name)
		}

		for _, in := range s.Inputs {
			if _, ok := produced[in]; !ok {
				return nil, fmt.Errorf("stage %q reads %s before any stage produces it", s.Name, in)
			}
		}

		// Tables produced earlier in this stage's own output list count as
		// available: they are flushed first.
		local := make(map[string]bool)
		for _, out := range s.Outputs {
			def, ok := defs[out]
			if !ok {
				return nil, fmt.Errorf("stage %q writes unknown table %s", s.Name, out)
			}
			if prev, ok := produced[out]; ok {
				return nil, fmt.Errorf("table %s is written by both %q and %q", out, prev, s.Name)
			}
			for _, dep := range def.DependsOn() {
				if _, ok := produced[dep]; !ok && !local[dep] {
					return nil, fmt.Errorf("stage %q writes %s before its parent %s exists", s.Name, out, dep)
				}
			}
			local[out] = true
		}
		for out := range local {
			produced[out] = s.Name
		}
	}

	return &Pipeline{stages: stages, tables: defs}, nil
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run executes every stage in order. The first error stops the run.
func (p *Pipeline) Run(ctx context.Context, env *Env) (*Report, error) {
	env.tables = p.tables
	report := &Report{}

	for i := range p.stages {
		s := &p.stages[i]
		if err := ctx.Err(); err != nil {
			return report, err
		}

		log := logging.Stage(s.Name)
		log.Info().Strs("tables", s.Outputs).Msg("Starting stage")

		started := time.Now()
		env.begin(s)
		err := s.Run(ctx, env)
		if err == nil {
			err = env.flush(ctx)
		}
		sr := env.end()
		sr.Duration = time.Since(started)
		report.Stages = append(report.Stages, sr)

		if err != nil {
			return report, fmt.Errorf("failed to generate %s: %w", s.Name, err)
		}

		log.Info().
			Int("generated", sr.Generated).
			Int("skipped", sr.TotalSkipped()).
			Dur("duration", sr.Duration).
			Msg("Stage complete")
	}

	return report, nil
}
