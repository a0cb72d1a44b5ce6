package pipeline

// Record is one row destined for a table. Values follow the table's column
// order.
type Record struct {
	Table  string
	Values []any
}

// Row builds a Record.
func Row(table string, values ...any) Record {
	return Record{Table: table, Values: values}
}

// Outcome is the result of generating one logical entity: either the rows
// to write, or the reason nothing was written.
type Outcome struct {
	records []Record
	skip    string
}

// Emit writes the given records. Records of different tables are written
// in the stage's declared output order.
func Emit(records ...Record) Outcome {
	return Outcome{records: records}
}

// Skip reports that no row was written, e.g. because a parent lookup
// failed.
func Skip(reason string) Outcome {
	if reason == "" {
		reason = "skipped"
	}
	return Outcome{skip: reason}
}

// Skipped reports whether the outcome is a skip, and why.
func (o Outcome) Skipped() (string, bool) {
	return o.skip, o.skip != ""
}

// Records returns the emitted records.
func (o Outcome) Records() []Record {
	return o.records
}
