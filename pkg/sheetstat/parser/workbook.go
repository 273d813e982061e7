package parser

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads one sheet of an xlsx workbook into raw string rows.
// An empty sheetName selects the first sheet in workbook order.
func ReadWorkbook(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name, err := selectSheet(f.GetSheetList(), sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	return cropSheet(name, rows), nil
}

// selectSheet picks the named sheet, or the first one when name is empty.
func selectSheet(names []string, name string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if name == "" {
		return names[0], nil
	}
	for _, n := range names {
		if n == name {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func cropSheet(name string, rows [][]string) [][]string {
	if b, ok := DataBounds(rows); ok {
		slog.Debug("sheet data range", "sheet", name, "range", b.Range())
	}
	return Crop(rows)
}
