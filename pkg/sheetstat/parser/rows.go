package parser

import (
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
)

// RowOptions controls how raw rows become a table.
type RowOptions struct {
	// InferTypes parses cells as NA, number or text. When false every cell
	// is kept as text.
	InferTypes bool
	// Strict rejects data rows wider than the header. When false the header
	// is widened with unnamed columns.
	Strict bool
}

// BuildTable converts raw rows into a table using row 0 as the header.
// It fails with ErrNoData when fewer than two rows are present.
func BuildTable(rows [][]string, opts RowOptions) (*models.Table, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	header := rows[0]
	if !opts.Strict {
		width := len(header)
		for _, row := range rows[1:] {
			if len(row) > width {
				width = len(row)
			}
		}
		if width > len(header) {
			header = append(append([]string(nil), header...), make([]string, width-len(header))...)
		}
	}

	data := make([][]models.Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]models.Cell, len(row))
		for i, raw := range row {
			cells[i] = parseValue(raw, opts.InferTypes)
		}
		data = append(data, cells)
	}

	return models.NewTable(header, data)
}

// parseValue types a raw cell string.
func parseValue(s string, infer bool) models.Cell {
	if !infer {
		return models.Text(s)
	}
	return models.ParseValue(s)
}
