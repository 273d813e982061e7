package sheetstat

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/parser"
)

// urlSegment precedes the identifier in a Google Sheets URL.
const urlSegment = "/d/"

// SourceKind tags the variant held by a Source.
type SourceKind int

const (
	// SourceSpreadsheet is a Google Sheets spreadsheet.
	SourceSpreadsheet SourceKind = iota
	// SourceLocalFile is a file on disk.
	SourceLocalFile
)

func (k SourceKind) String() string {
	if k == SourceSpreadsheet {
		return "spreadsheet"
	}
	return "local-file"
}

// Source is the resolved input of a run. SpreadsheetID and Worksheet are
// set for spreadsheets; Path, SheetName and Separator for local files.
type Source struct {
	Kind SourceKind

	SpreadsheetID string
	Worksheet     int

	Path      string
	SheetName string
	Separator rune
}

// ExtractSpreadsheetID returns the identifier following "/d/" in a
// Google Sheets URL, cut at the next "/", "?" or "#". Input without the
// segment is returned unchanged.
func ExtractSpreadsheetID(s string) (string, error) {
	s = strings.TrimSpace(s)
	_, rest, found := strings.Cut(s, urlSegment)
	if !found {
		return s, nil
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	return rest, nil
}

// ResolveSource validates that exactly one input is set and turns it into
// a Source. It performs no I/O.
func ResolveSource(opts Options) (Source, error) {
	given := 0
	for _, v := range []string{opts.URL, opts.ID, opts.Path} {
		if strings.TrimSpace(v) != "" {
			given++
		}
	}
	switch {
	case given == 0:
		return Source{}, ErrNoSource
	case given > 1:
		return Source{}, ErrSourceConflict
	}

	if strings.TrimSpace(opts.Path) != "" {
		sep := opts.Separator
		if sep == "" {
			sep = ","
		}
		r, err := parser.ParseSeparator(sep)
		if err != nil {
			return Source{}, err
		}
		format := parser.DetectFormat(opts.Path)
		if opts.SheetName != "" && !format.UsesSheetName() {
			slog.Warn("sheet name ignored for delimited input", "path", opts.Path, "sheet", opts.SheetName)
		}
		if r != ',' && !format.UsesSeparator() {
			slog.Warn("separator ignored for workbook input", "path", opts.Path, "sep", sep)
		}
		return Source{
			Kind:      SourceLocalFile,
			Path:      opts.Path,
			SheetName: opts.SheetName,
			Separator: r,
		}, nil
	}

	if opts.Worksheet < 0 {
		return Source{}, fmt.Errorf("%w: %d", ErrInvalidWorksheet, opts.Worksheet)
	}

	raw := opts.ID
	if strings.TrimSpace(opts.URL) != "" {
		raw = opts.URL
	}
	id, err := ExtractSpreadsheetID(raw)
	if err != nil {
		return Source{}, err
	}
	return Source{Kind: SourceSpreadsheet, SpreadsheetID: id, Worksheet: opts.Worksheet}, nil
}
