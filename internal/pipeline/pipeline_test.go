package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/testutil"
)

var (
	refTable = db.Table{
		Name:    "Reference",
		Columns: []db.Column{db.Int("RefID").PK(), db.Varchar("Label", 20)},
	}
	depTable = db.Table{
		Name:        "Dependent",
		Columns:     []db.Column{db.Int("DepID").PK(), db.Int("RefID"), db.Date("CreatedOn")},
		ForeignKeys: []db.ForeignKey{db.References("RefID", "Reference", "RefID")},
	}
	testTables = []db.Table{refTable, depTable}
)

func noop(context.Context, *Env) error { return nil }

func TestNewValidatesOrdering(t *testing.T) {
	tests := []struct {
		name    string
		stages  []Stage
		wantErr string
	}{
		{
			name: "valid",
			stages: []Stage{
				{Name: "ref", Outputs: []string{"Reference"}, Run: noop},
				{Name: "dep", Inputs: []string{"Reference"}, Outputs: []string{"Dependent"}, Run: noop},
			},
		},
		{
			name: "parent and child in one stage",
			stages: []Stage{
				{Name: "both", Outputs: []string{"Reference", "Dependent"}, Run: noop},
			},
		},
		{
			name: "child listed before parent",
			stages: []Stage{
				{Name: "both", Outputs: []string{"Dependent", "Reference"}, Run: noop},
			},
			wantErr: "before its parent",
		},
		{
			name: "input not produced",
			stages: []Stage{
				{Name: "dep", Inputs: []string{"Reference"}, Outputs: []string{"Dependent"}, Run: noop},
			},
			wantErr: "before any stage produces it",
		},
		{
			name: "unknown table",
			stages: []Stage{
				{Name: "x", Outputs: []string{"Nope"}, Run: noop},
			},
			wantErr: "unknown table",
		},
		{
			name: "duplicate writer",
			stages: []Stage{
				{Name: "a", Outputs: []string{"Reference"}, Run: noop},
				{Name: "b", Outputs: []string{"Reference"}, Run: noop},
			},
			wantErr: "written by both",
		},
		{
			name: "duplicate stage name",
			stages: []Stage{
				{Name: "a", Outputs: []string{"Reference"}, Run: noop},
				{Name: "a", Outputs: []string{"Dependent"}, Run: noop},
			},
			wantErr: "duplicate stage",
		},
		{
			name:    "missing run",
			stages:  []Stage{{Name: "a", Outputs: []string{"Reference"}}},
			wantErr: "no Run function",
		},
		{
			name:    "no outputs",
			stages:  []Stage{{Name: "a", Run: noop}},
			wantErr: "no outputs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(testTables, tt.stages...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if len(p.Stages()) != len(tt.stages) {
					t.Errorf("Stages() = %v", p.Stages())
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func setupSink(t *testing.T) db.Sink {
	t.Helper()
	sink := testutil.NewSQLiteSink(t)
	ctx := context.Background()
	for _, tbl := range testTables {
		if _, err := sink.Exec(ctx, tbl.CreateSQL(sink.Dialect())); err != nil {
			t.Fatalf("Failed to create %s: %v", tbl.Name, err)
		}
	}
	return sink
}

func newTestEnv(sink db.Sink, counts map[string]int) *Env {
	return NewEnv(sink, datagen.NewFakerWithSeed(99), Options{
		Today:  datagen.Date(2025, 12, 20),
		Now:    time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC),
		Batch:  datagen.BatchInsertConfig{BatchSize: 3, ProgressInterval: 100},
		Counts: counts,
	})
}

func referenceStage() Stage {
	return Stage{
		Name:    "reference",
		Outputs: []string{"Reference"},
		Run: func(ctx context.Context, env *Env) error {
			return env.Populate(ctx, "reference", env.Count("Reference"), func(i int) (Outcome, error) {
				return Emit(Row("Reference", i, "ref")), nil
			})
		},
	}
}

func TestRunReferentialMembership(t *testing.T) {
	sink := setupSink(t)
	ctx := context.Background()

	var emitted []int64
	dependent := Stage{
		Name:    "dependent",
		Inputs:  []string{"Reference"},
		Outputs: []string{"Dependent"},
		Run: func(ctx context.Context, env *Env) error {
			keys, err := env.Keys(ctx, "Reference", "RefID")
			if err != nil {
				return err
			}
			valid := make(map[int64]bool, len(keys))
			for _, k := range keys {
				valid[k] = true
			}
			return env.Populate(ctx, "dependent", env.Count("Dependent"), func(i int) (Outcome, error) {
				// Sample past the end of the key range so some lookups miss.
				ref := int64(env.Faker.Int(1, 7))
				if !valid[ref] {
					return Skip("reference not found"), nil
				}
				emitted = append(emitted, ref)
				return Emit(Row("Dependent", i, ref, env.Faker.Day(datagen.Date(2024, 1, 1), env.Today))), nil
			})
		},
	}

	p, err := New(testTables, referenceStage(), dependent)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	env := newTestEnv(sink, map[string]int{"Reference": 5, "Dependent": 10})
	report, err := p.Run(ctx, env)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, ref := range emitted {
		if ref < 1 || ref > 5 {
			t.Errorf("Emitted dangling reference %d", ref)
		}
	}

	dep := report.Stages[1]
	if dep.Generated+dep.TotalSkipped() != 10 {
		t.Errorf("Generated %d + skipped %d != 10", dep.Generated, dep.TotalSkipped())
	}
	if dep.Skipped["reference not found"] != dep.TotalSkipped() {
		t.Errorf("Unexpected skip reasons: %v", dep.Skipped)
	}
	if got := testutil.CountRows(t, sink, "Dependent"); got != int64(dep.Generated) {
		t.Errorf("Dependent has %d rows, report says %d", got, dep.Generated)
	}
	if got := report.Rows("Reference"); got != 5 {
		t.Errorf("Reference rows = %d, want 5", got)
	}

	rows := testutil.QueryRows(t, sink,
		`SELECT COUNT(*) FROM "Dependent" d LEFT JOIN "Reference" r ON r."RefID" = d."RefID" WHERE r."RefID" IS NULL`)
	if n, _ := db.AsInt64(rows[0][0]); n != 0 {
		t.Errorf("Found %d orphaned dependents", n)
	}
}

func TestPopulateRejectsUndeclaredTable(t *testing.T) {
	sink := setupSink(t)
	stage := Stage{
		Name:    "reference",
		Outputs: []string{"Reference"},
		Run: func(ctx context.Context, env *Env) error {
			return env.Populate(ctx, "bad", 1, func(i int) (Outcome, error) {
				return Emit(Row("Dependent", i, 1, time.Now())), nil
			})
		},
	}
	p, err := New(testTables, stage)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = p.Run(context.Background(), newTestEnv(sink, nil))
	if err == nil || !strings.Contains(err.Error(), "does not declare output") {
		t.Errorf("Expected undeclared output error, got %v", err)
	}
}

func TestPopulateRejectsWrongArity(t *testing.T) {
	sink := setupSink(t)
	stage := Stage{
		Name:    "reference",
		Outputs: []string{"Reference"},
		Run: func(ctx context.Context, env *Env) error {
			return env.Populate(ctx, "bad", 1, func(i int) (Outcome, error) {
				return Emit(Row("Reference", i)), nil
			})
		},
	}
	p, err := New(testTables, stage)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = p.Run(context.Background(), newTestEnv(sink, nil))
	if err == nil || !strings.Contains(err.Error(), "expects 2 values") {
		t.Errorf("Expected arity error, got %v", err)
	}
}

func TestSelectRequiresDeclaredInput(t *testing.T) {
	sink := setupSink(t)
	stage := Stage{
		Name:    "dependent",
		Outputs: []string{"Reference"},
		Run: func(ctx context.Context, env *Env) error {
			_, err := env.Keys(ctx, "Dependent", "DepID")
			return err
		},
	}
	p, err := New(testTables, stage)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = p.Run(context.Background(), newTestEnv(sink, nil))
	if err == nil || !strings.Contains(err.Error(), "does not declare input") {
		t.Errorf("Expected undeclared input error, got %v", err)
	}
}

func TestParentsFlushBeforeChildren(t *testing.T) {
	sink := setupSink(t)
	// Batch size 3 forces the Dependent writer to fill before Reference
	// does; flushing must still write Reference first.
	stage := Stage{
		Name:    "both",
		Outputs: []string{"Reference", "Dependent"},
		Run: func(ctx context.Context, env *Env) error {
			return env.Populate(ctx, "both", 4, func(i int) (Outcome, error) {
				return Emit(
					Row("Dependent", i*2-1, i, env.Today),
					Row("Dependent", i*2, i, env.Today),
					Row("Reference", i, "ref"),
				), nil
			})
		},
	}
	p, err := New(testTables, stage)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	report, err := p.Run(context.Background(), newTestEnv(sink, nil))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Rows("Dependent") != 8 || report.Rows("Reference") != 4 {
		t.Errorf("Unexpected row counts: %v", report.Stages[0].Rows)
	}
}

func TestUniqueSetsSpanStages(t *testing.T) {
	env := newTestEnv(nil, nil)
	env.Unique("email").Add("a@example.com")
	if !env.Unique("email").Contains("a@example.com") {
		t.Error("Unique set should persist between calls")
	}
	if env.Unique("policy").Len() != 0 {
		t.Error("Distinct names should have distinct sets")
	}
}

func TestReportSkipped(t *testing.T) {
	r := &Report{Stages: []StageReport{
		{Name: "a", Skipped: map[string]int{"x": 2}, Rows: map[string]int64{"T": 3}},
		{Name: "b", Skipped: map[string]int{"x": 1, "y": 4}, Rows: map[string]int64{"T": 1, "U": 2}},
	}}
	skipped := r.Skipped()
	if skipped["x"] != 3 || skipped["y"] != 4 {
		t.Errorf("Skipped() = %v", skipped)
	}
	if r.Rows("T") != 4 {
		t.Errorf("Rows(T) = %d, want 4", r.Rows("T"))
	}
	if tables := r.Tables(); len(tables) != 2 || tables[0] != "T" {
		t.Errorf("Tables() = %v", tables)
	}
	r.Log()
}

func TestResolveCounts(t *testing.T) {
	volumes := []Volume{
		{Table: "Branches", Rows: 50, Fixed: true},
		{Table: "Customers", Rows: 1000},
		{Table: "Snapshots", Derived: true},
	}

	counts, err := ResolveCounts(volumes, 0.5, map[string]int{"customers": 7})
	if err != nil {
		t.Fatalf("ResolveCounts failed: %v", err)
	}
	if counts["Branches"] != 50 {
		t.Errorf("Fixed table was scaled: %d", counts["Branches"])
	}
	if counts["Customers"] != 7 {
		t.Errorf("Override not applied: %d", counts["Customers"])
	}

	counts, err = ResolveCounts(volumes, 0.5, nil)
	if err != nil {
		t.Fatalf("ResolveCounts failed: %v", err)
	}
	if counts["Customers"] != 500 {
		t.Errorf("Customers = %d, want 500", counts["Customers"])
	}

	if _, err := ResolveCounts(volumes, 1, map[string]int{"Nope": 1}); err == nil {
		t.Error("Expected error for unknown table")
	}
	if _, err := ResolveCounts(volumes, 1, map[string]int{"Snapshots": 1}); err == nil {
		t.Error("Expected error for derived table override")
	}
	if _, err := ResolveCounts(volumes, 0, nil); err == nil {
		t.Error("Expected error for zero scale")
	}
}
