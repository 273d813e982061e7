package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds is the zero-based, inclusive bounding box of non-empty cells.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Range renders the bounds in A1 notation, e.g. "B2:D10".
func (b Bounds) Range() string {
	startCell, _ := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DataBounds finds the bounding box of non-empty cells.
// The second result is false when every cell is empty.
func DataBounds(rows [][]string) (Bounds, bool) {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b, b.MinRow >= 0
}

// Crop cuts a sheet grid down to its data bounds and drops rows with no
// data inside them, the way delimited text skips blank lines. Ragged rows
// are left ragged.
func Crop(rows [][]string) [][]string {
	b, ok := DataBounds(rows)
	if !ok {
		return nil
	}

	out := make([][]string, 0, b.MaxRow-b.MinRow+1)
	for rowIdx := b.MinRow; rowIdx <= b.MaxRow; rowIdx++ {
		row := rows[rowIdx]
		end := b.MaxCol + 1
		if end > len(row) {
			end = len(row)
		}
		if b.MinCol >= end || isBlank(row[b.MinCol:end]) {
			continue
		}
		out = append(out, row[b.MinCol:end])
	}
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
