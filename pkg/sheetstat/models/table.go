package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrRaggedTable indicates a data row wider than the header.
var ErrRaggedTable = errors.New("row wider than header")

// Column is a named, ordered sequence of cells.
type Column struct {
	// Name is the unique column name.
	Name string
	// Cells holds one value per row.
	Cells []Cell
}

// NonMissing returns the number of cells holding a value.
func (c Column) NonMissing() int {
	n := 0
	for _, cell := range c.Cells {
		if !cell.IsMissing() {
			n++
		}
	}
	return n
}

// Dtype returns a pandas-style type label for the column:
// "int64" when every cell is an integral number, "float64" when every
// present cell is a number (or the column is empty), "object" otherwise.
func (c Column) Dtype() string {
	integral := true
	missing := false
	for _, cell := range c.Cells {
		switch cell.Kind {
		case CellText:
			return "object"
		case CellMissing:
			missing = true
		case CellNumber:
			if cell.Number != math.Trunc(cell.Number) || math.IsInf(cell.Number, 0) {
				integral = false
			}
		}
	}
	if integral && !missing && len(c.Cells) > 0 {
		return "int64"
	}
	return "float64"
}

// IsNumeric reports whether the column is typed as a number column.
func (c Column) IsNumeric() bool {
	return c.Dtype() != "object"
}

// NumericColumn is the numeric-coerced copy of a column. NaN marks a
// missing or non-numeric value.
type NumericColumn struct {
	// Name is the source column name.
	Name string
	// Values holds one coerced value per row.
	Values []float64
}

// Finite returns the non-NaN values in row order.
func (n NumericColumn) Finite() []float64 {
	out := make([]float64, 0, len(n.Values))
	for _, v := range n.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Table is an ordered set of equal-length, uniquely named columns.
type Table struct {
	columns []Column
	rows    int
}

// NewTable builds a table from a header row and data rows.
// Rows shorter than the header are padded with missing cells; longer rows
// are rejected. Header names are made unique.
func NewTable(header []string, rows [][]Cell) (*Table, error) {
	names := UniqueNames(header)
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Cells: make([]Cell, len(rows))}
	}
	for r, row := range rows {
		if len(row) > len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrRaggedTable, r+1, len(row), len(names))
		}
		for c := range cols {
			if c < len(row) {
				cols[c].Cells[r] = row[c]
			} else {
				cols[c].Cells[r] = Missing()
			}
		}
	}
	return &Table{columns: cols, rows: len(rows)}, nil
}

// UniqueNames replaces empty names with "Unnamed: i" and suffixes repeated
// names with ".1", ".2" and so on.
func UniqueNames(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]struct{}, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		candidate := name
		for {
			if _, taken := used[candidate]; !taken {
				break
			}
			counts[name]++
			candidate = fmt.Sprintf("%s.%d", name, counts[name])
		}
		used[candidate] = struct{}{}
		out[i] = candidate
	}
	return out
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.columns) }

// Columns returns the columns in order.
func (t *Table) Columns() []Column { return t.columns }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Row returns the cells of row i.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.columns))
	for c, col := range t.columns {
		row[c] = col.Cells[i]
	}
	return row
}

// Head returns a table holding at most the first n rows.
func (t *Table) Head(n int) *Table {
	if n > t.rows {
		n = t.rows
	}
	if n < 0 {
		n = 0
	}
	cols := make([]Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = Column{Name: c.Name, Cells: c.Cells[:n]}
	}
	return &Table{columns: cols, rows: n}
}

// Numeric coerces every column to float64 and returns those holding at
// least one finite value, in table order.
func (t *Table) Numeric() []NumericColumn {
	var out []NumericColumn
	for _, c := range t.columns {
		values := make([]float64, len(c.Cells))
		finite := false
		for i, cell := range c.Cells {
			values[i] = cell.Float()
			if !math.IsNaN(values[i]) {
				finite = true
			}
		}
		if finite {
			out = append(out, NumericColumn{Name: c.Name, Values: values})
		}
	}
	return out
}

// Equal reports whether two tables have the same names and cells.
func (t *Table) Equal(o *Table) bool {
	if t.rows != o.rows || len(t.columns) != len(o.columns) {
		return false
	}
	for i, c := range t.columns {
		oc := o.columns[i]
		if c.Name != oc.Name {
			return false
		}
		for r := range c.Cells {
			if c.Cells[r] != oc.Cells[r] {
				return false
			}
		}
	}
	return true
}
