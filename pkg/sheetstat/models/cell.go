// Package models defines the tabular data structures produced by the loaders.
package models

import (
	"math"
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// CellMissing is an empty or NA cell.
	CellMissing CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a non-numeric string cell.
	CellText
)

// Cell represents a single table value: missing, number or text.
type Cell struct {
	// Kind selects the populated field.
	Kind CellKind
	// Number holds the value when Kind is CellNumber.
	Number float64
	// Text holds the value when Kind is CellText.
	Text string
}

// Missing returns a missing cell.
func Missing() Cell {
	return Cell{Kind: CellMissing}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool {
	return c.Kind == CellMissing
}

// String renders the cell the way it is printed in reports.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return FormatNumber(c.Number)
	case CellText:
		return c.Text
	default:
		return "NaN"
	}
}

// Float coerces the cell to a float64.
// Missing cells, unparsable text and infinities yield NaN.
func (c Cell) Float() float64 {
	var f float64
	switch c.Kind {
	case CellNumber:
		f = c.Number
	case CellText:
		v, ok := ParseNumber(c.Text)
		if !ok {
			return math.NaN()
		}
		f = v
	default:
		return math.NaN()
	}
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// FormatNumber prints integral values without a fractional part.
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
