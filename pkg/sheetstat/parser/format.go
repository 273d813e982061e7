// Package parser reads local delimited-text and spreadsheet files into tables.
package parser

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported local input format.
type Format int

const (
	// FormatUnknown is any unrecognised extension. It is read as delimited
	// text first, falling back to workbook parsing.
	FormatUnknown Format = iota
	// FormatDelimited is delimited text (.csv, .txt, .tsv).
	FormatDelimited
	// FormatWorkbook is an Office Open XML workbook (.xlsx, .xlsm).
	FormatWorkbook
	// FormatLegacyWorkbook is a BIFF workbook (.xls).
	FormatLegacyWorkbook
)

var extFormats = map[string]Format{
	".csv":  FormatDelimited,
	".txt":  FormatDelimited,
	".tsv":  FormatDelimited,
	".xlsx": FormatWorkbook,
	".xlsm": FormatWorkbook,
	".xls":  FormatLegacyWorkbook,
}

// DetectFormat maps a file path to its input format by extension.
func DetectFormat(path string) Format {
	if f, ok := extFormats[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return FormatUnknown
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatDelimited:
		return "delimited"
	case FormatWorkbook:
		return "workbook"
	case FormatLegacyWorkbook:
		return "legacy-workbook"
	default:
		return "unknown"
	}
}

// UsesSeparator reports whether the field separator applies to the format.
func (f Format) UsesSeparator() bool {
	return f == FormatDelimited || f == FormatUnknown
}

// UsesSheetName reports whether a sheet name selects data in the format.
func (f Format) UsesSheetName() bool {
	return f != FormatDelimited
}
