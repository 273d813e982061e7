package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
)

// ReadOptions configures local file reading.
type ReadOptions struct {
	// SheetName selects a workbook sheet. Empty means the first sheet.
	SheetName string
	// Separator is the field separator for delimited text.
	Separator rune
}

// DefaultReadOptions returns comma-separated, first-sheet options.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Separator: ','}
}

// ReadFile loads a local delimited or workbook file into a table,
// dispatching on the file extension.
func ReadFile(path string, opts ReadOptions) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	if opts.Separator == 0 {
		opts.Separator = ','
	}

	format := DetectFormat(path)
	slog.Debug("reading local file", "path", path, "format", format.String())

	rows, strict, err := readRows(path, format, opts)
	if err != nil {
		return nil, err
	}

	return BuildTable(rows, RowOptions{InferTypes: true, Strict: strict})
}

func readRows(path string, format Format, opts ReadOptions) ([][]string, bool, error) {
	switch format {
	case FormatDelimited:
		rows, err := ReadDelimited(path, opts.Separator)
		return rows, true, err
	case FormatWorkbook:
		rows, err := ReadWorkbook(path, opts.SheetName)
		return rows, false, err
	case FormatLegacyWorkbook:
		rows, err := ReadLegacyWorkbook(path, opts.SheetName)
		return rows, false, err
	}

	// Unknown extension: delimited text first, then either workbook flavour.
	rows, delimErr := ReadDelimited(path, opts.Separator)
	if delimErr == nil {
		return rows, true, nil
	}
	slog.Debug("delimited parse failed, trying workbook", "path", path, "error", delimErr)

	rows, err := ReadWorkbook(path, opts.SheetName)
	if err == nil {
		return rows, false, nil
	}
	if errors.Is(err, ErrSheetNotFound) {
		return nil, false, err
	}

	rows, legacyErr := ReadLegacyWorkbook(path, opts.SheetName)
	if legacyErr == nil {
		return rows, false, nil
	}
	return nil, false, fmt.Errorf("unrecognised file format: %w", errors.Join(delimErr, err, legacyErr))
}
