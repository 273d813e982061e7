package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// ReadLegacyWorkbook reads one sheet of a BIFF (.xls) workbook into raw
// string rows. An empty sheetName selects the first sheet.
func ReadLegacyWorkbook(path, sheetName string) (rows [][]string, err error) {
	// The BIFF reader panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("failed to read xls workbook: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	if wb == nil {
		return nil, fmt.Errorf("failed to open xls workbook: no workbook stream")
	}

	names := make([]string, wb.NumSheets())
	for i := range names {
		if sheet := wb.GetSheet(i); sheet != nil {
			names[i] = sheet.Name
		}
	}

	name, err := selectSheet(names, sheetName)
	if err != nil {
		return nil, err
	}

	var sheet *xls.WorkSheet
	for i, n := range names {
		if n == name {
			sheet = wb.GetSheet(i)
			break
		}
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := legacyRow(sheet, r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}

	return cropSheet(name, rows), nil
}

// legacyRow returns row r, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences missing rows, so the panic is contained here.
func legacyRow(sheet *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(r)
}
