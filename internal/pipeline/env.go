package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/logging"
)

// maxParams bounds the bind parameters of one multi-row insert; SQLite is
// the tightest of the supported sinks.
const maxParams = 30000

// Options configures an Env.
type Options struct {
	// Today bounds every generated date.
	Today time.Time

	// Now is stamped into creation timestamps. Zero means time.Now().
	Now time.Time

	// Batch controls insert batching and progress logging.
	Batch datagen.BatchInsertConfig

	// Counts holds the resolved row count per table.
	Counts map[string]int
}

// Env is the state shared by the stages of one run: the sink, the seeded
// faker and the uniqueness sets for identities.
type Env struct {
	Sink  db.Sink
	Faker *datagen.Faker
	Today time.Time
	Now   time.Time
	Batch datagen.BatchInsertConfig

	counts  map[string]int
	unique  map[string]*datagen.UniqueSet
	tables  map[string]db.Table
	stage   *Stage
	current StageReport
	writers []*batchWriter
}

// NewEnv creates the shared run state.
func NewEnv(sink db.Sink, faker *datagen.Faker, opts Options) *Env {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	batch := opts.Batch
	def := datagen.DefaultBatchConfig()
	if batch.BatchSize < 1 {
		batch.BatchSize = def.BatchSize
	}
	if batch.ProgressInterval < 1 {
		batch.ProgressInterval = def.ProgressInterval
	}
	counts := make(map[string]int, len(opts.Counts))
	for k, v := range opts.Counts {
		counts[k] = v
	}
	return &Env{
		Sink:   sink,
		Faker:  faker,
		Today:  datagen.DateOnly(opts.Today),
		Now:    now,
		Batch:  batch,
		counts: counts,
		unique: make(map[string]*datagen.UniqueSet),
	}
}

// Count returns the configured row count for a table.
func (e *Env) Count(table string) int {
	return e.counts[table]
}

// Unique returns the named uniqueness set, creating it on first use. Sets
// live for the whole run so identities stay unique across stages.
func (e *Env) Unique(name string) *datagen.UniqueSet {
	s, ok := e.unique[name]
	if !ok {
		s = datagen.NewUniqueSet()
		e.unique[name] = s
	}
	return s
}

// Quote quotes an identifier for the sink's dialect.
func (e *Env) Quote(ident string) string {
	return e.Sink.Dialect().Quote(ident)
}

func (e *Env) begin(s *Stage) {
	e.stage = s
	e.current = StageReport{
		Name:    s.Name,
		Skipped: make(map[string]int),
		Rows:    make(map[string]int64),
	}
	e.writers = e.writers[:0]
	for _, out := range s.Outputs {
		e.writers = append(e.writers, newBatchWriter(e.tables[out], e.Sink.Dialect(), e.Batch.BatchSize))
	}
}

func (e *Env) end() StageReport {
	sr := e.current
	e.stage = nil
	e.writers = nil
	return sr
}

// Populate calls fn for i in [1, count] and writes what each call emits.
// A skipped outcome writes nothing and is counted under its reason.
func (e *Env) Populate(ctx context.Context, name string, count int, fn func(i int) (Outcome, error)) error {
	if e.stage == nil {
		return fmt.Errorf("populate %s called outside a stage", name)
	}

	progress := datagen.NewProgressReporter(name, int64(count), e.Batch.ProgressInterval)
	for i := 1; i <= count; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		out, err := fn(i)
		if err != nil {
			return fmt.Errorf("%s %d: %w", name, i, err)
		}
		progress.Update(1)

		if reason, skipped := out.Skipped(); skipped {
			e.current.Skipped[reason]++
			logging.Debug().
				Str("stage", e.stage.Name).
				Str("entity", name).
				Int("index", i).
				Str("reason", reason).
				Msg("Skipped record")
			continue
		}

		e.current.Generated++
		for _, rec := range out.Records() {
			if err := e.add(rec); err != nil {
				return err
			}
		}
		// An outcome is buffered whole before any flush so a child never
		// reaches the sink ahead of a parent emitted alongside it.
		if slices.ContainsFunc(e.writers, (*batchWriter).full) {
			if err := e.flush(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Env) add(rec Record) error {
	idx := slices.IndexFunc(e.writers, func(w *batchWriter) bool { return w.table.Name == rec.Table })
	if idx < 0 {
		return fmt.Errorf("stage %q does not declare output table %s", e.stage.Name, rec.Table)
	}
	w := e.writers[idx]
	if len(rec.Values) != len(w.table.Columns) {
		return fmt.Errorf("%s expects %d values, got %d", rec.Table, len(w.table.Columns), len(rec.Values))
	}
	w.rows = append(w.rows, rec.Values)
	return nil
}

// flush writes every buffered row in declared output order so parents
// land before their children.
func (e *Env) flush(ctx context.Context) error {
	for _, w := range e.writers {
		n, err := w.flush(ctx, e.Sink)
		if err != nil {
			return fmt.Errorf("failed to insert into %s: %w", w.table.Name, err)
		}
		e.current.Rows[w.table.Name] += n
	}
	return nil
}

// Select reads columns of a declared input table, ordered by the first
// column so seeded runs are reproducible. where may be nil.
func (e *Env) Select(ctx context.Context, table string, columns []string, where sq.Sqlizer, fn func(values []any) error) error {
	if e.stage == nil || !slices.Contains(e.stage.Inputs, table) {
		stage := ""
		if e.stage != nil {
			stage = e.stage.Name
		}
		return fmt.Errorf("stage %q does not declare input table %s", stage, table)
	}

	d := e.Sink.Dialect()
	q := d.Builder().
		Select(d.QuoteAll(columns)...).
		From(d.Quote(table)).
		OrderBy(d.Quote(columns[0]))
	if where != nil {
		q = q.Where(where)
	}

	rows, err := db.QueryBuilder(ctx, e.Sink, q)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", table, err)
	}
	return db.ForEach(rows, fn)
}

// Keys returns every value of an integer key column of an input table.
func (e *Env) Keys(ctx context.Context, table, column string) ([]int64, error) {
	var keys []int64
	err := e.Select(ctx, table, []string{column}, nil, func(v []any) error {
		k, err := db.AsInt64(v[0])
		if err != nil {
			return fmt.Errorf("%s.%s: %w", table, column, err)
		}
		keys = append(keys, k)
		return nil
	})
	return keys, err
}

type batchWriter struct {
	table   db.Table
	columns []string
	limit   int
	rows    [][]any
	dialect db.Dialect
}

func newBatchWriter(table db.Table, d db.Dialect, batchSize int) *batchWriter {
	limit := batchSize
	if n := len(table.Columns); n > 0 {
		limit = min(limit, max(1, maxParams/n))
	}
	return &batchWriter{
		table:   table,
		columns: d.QuoteAll(table.ColumnNames()),
		limit:   max(limit, 1),
		dialect: d,
	}
}

func (w *batchWriter) full() bool {
	return len(w.rows) >= w.limit
}

func (w *batchWriter) flush(ctx context.Context, sink db.Sink) (int64, error) {
	if len(w.rows) == 0 {
		return 0, nil
	}
	insert := w.dialect.Builder().
		Insert(w.dialect.Quote(w.table.Name)).
		Columns(w.columns...)
	for _, r := range w.rows {
		insert = insert.Values(r...)
	}
	if _, err := db.ExecBuilder(ctx, sink, insert); err != nil {
		return 0, err
	}
	n := int64(len(w.rows))
	w.rows = w.rows[:0]
	return n, nil
}
