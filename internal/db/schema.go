//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"fmt"
	"strings"
)

// ColumnKind is a portable column type.
type ColumnKind int

const (
	KindInteger ColumnKind = iota
	KindVarchar
	KindDecimal
	KindDate
	KindBoolean
	KindText
	KindTimestamp
)

// Column describes one table column.
type Column struct {
	Name       string
	Kind       ColumnKind
	Size       int // VARCHAR length or DECIMAL precision
	Scale      int // DECIMAL scale
	Nullable   bool
	PrimaryKey bool
}

// Int declares an INTEGER column.
func Int(name string) Column { return Column{Name: name, Kind: KindInteger} }

// Varchar declares a VARCHAR(size) column.
func Varchar(name string, size int) Column { return Column{Name: name, Kind: KindVarchar, Size: size} }

// Decimal declares a DECIMAL(precision, scale) column.
func Decimal(name string, precision, scale int) Column {
	return Column{Name: name, Kind: KindDecimal, Size: precision, Scale: scale}
}

// Date declares a DATE column.
func Date(name string) Column { return Column{Name: name, Kind: KindDate} }

// Bool declares a BOOLEAN column.
func Bool(name string) Column { return Column{Name: name, Kind: KindBoolean} }

// Text declares a TEXT column.
func Text(name string) Column { return Column{Name: name, Kind: KindText} }

// Timestamp declares a timestamp column.
func Timestamp(name string) Column { return Column{Name: name, Kind: KindTimestamp} }

// PK marks the column as the primary key.
func (c Column) PK() Column {
	c.PrimaryKey = true
	return c
}

// Null allows NULL values.
func (c Column) Null() Column {
	c.Nullable = true
	return c
}

func (c Column) sqlType(d Dialect) string {
	switch c.Kind {
	case KindInteger:
		return "INTEGER"
	case KindVarchar:
		return fmt.Sprintf("VARCHAR(%d)", c.Size)
	case KindDecimal:
		return fmt.Sprintf("DECIMAL(%d,%d)", c.Size, c.Scale)
	case KindDate:
		return "DATE"
	case KindBoolean:
		return "BOOLEAN"
	case KindText:
		return "TEXT"
	case KindTimestamp:
		if d == MySQL {
			return "DATETIME"
		}
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

// ForeignKey declares a reference from Column to RefTable.RefColumn.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table describes one dataset table.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// References builds a ForeignKey.
func References(column, refTable, refColumn string) ForeignKey {
	return ForeignKey{Column: column, RefTable: refTable, RefColumn: refColumn}
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// DependsOn lists the distinct tables referenced by foreign keys, excluding
// self references.
func (t Table) DependsOn() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, fk := range t.ForeignKeys {
		if fk.RefTable == t.Name || seen[fk.RefTable] {
			continue
		}
		seen[fk.RefTable] = true
		deps = append(deps, fk.RefTable)
	}
	return deps
}

// CreateSQL renders a CREATE TABLE IF NOT EXISTS statement.
func (t Table) CreateSQL(d Dialect) string {
	var lines []string
	for _, c := range t.Columns {
		line := "    " + d.Quote(c.Name) + " " + c.sqlType(d)
		if c.PrimaryKey {
			line += " PRIMARY KEY"
		} else if !c.Nullable {
			line += " NOT NULL"
		}
		lines = append(lines, line)
	}
	for _, fk := range t.ForeignKeys {
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.Quote(fk.Column), d.Quote(fk.RefTable), d.Quote(fk.RefColumn)))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		d.Quote(t.Name), strings.Join(lines, ",\n"))
}

// DropSQL renders a DROP TABLE IF EXISTS statement.
func (t Table) DropSQL(d Dialect) string {
	return "DROP TABLE IF EXISTS " + d.Quote(t.Name)
}
