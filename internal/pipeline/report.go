package pipeline

import (
	"maps"
	"slices"
	"time"

	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

// StageReport summarizes one stage.
type StageReport struct {
	Name string

	// Generated counts logical entities that produced rows.
	Generated int

	// Skipped counts entities that produced nothing, by reason.
	Skipped map[string]int

	// Rows counts rows written per table.
	Rows map[string]int64

	Duration time.Duration
}

// TotalSkipped returns the number of skipped entities across all reasons.
func (s StageReport) TotalSkipped() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Report summarizes a pipeline run.
type Report struct {
	Stages []StageReport
}

// Rows returns the number of rows written to a table.
func (r *Report) Rows(table string) int64 {
	var n int64
	for _, s := range r.Stages {
		n += s.Rows[table]
	}
	return n
}

// Tables returns every table written during the run, sorted.
func (r *Report) Tables() []string {
	seen := make(map[string]bool)
	for _, s := range r.Stages {
		for t := range s.Rows {
			seen[t] = true
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Skipped returns skip counts by reason across all stages.
func (r *Report) Skipped() map[string]int {
	out := make(map[string]int)
	for _, s := range r.Stages {
		for reason, n := range s.Skipped {
			out[reason] += n
		}
	}
	return out
}

// Log writes a per-table row summary, and a warning when records were
// skipped.
func (r *Report) Log() {
	for _, table := range r.Tables() {
		logging.Info().
			Str("table", table).
			Int64("rows", r.Rows(table)).
			Msg("Table populated")
	}

	skipped := r.Skipped()
	if len(skipped) == 0 {
		return
	}
	ev := logging.Warn()
	for _, reason := range slices.Sorted(maps.Keys(skipped)) {
		ev = ev.Int(reason, skipped[reason])
	}
	ev.Msg("Some records were skipped")
}
