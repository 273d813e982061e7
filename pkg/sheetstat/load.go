package sheetstat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/parser"
)

// WorksheetReader reads the raw values of one worksheet.
type WorksheetReader interface {
	ReadWorksheet(ctx context.Context, spreadsheetID string, index int) ([][]string, error)
}

// Loader turns a Source into a table.
type Loader struct {
	// Sheets reads spreadsheet sources. It is unused for local files.
	Sheets WorksheetReader
}

// Load reads the source and builds a table with the first row as header.
func (l *Loader) Load(ctx context.Context, src Source) (*models.Table, error) {
	switch src.Kind {
	case SourceSpreadsheet:
		return l.loadSpreadsheet(ctx, src)
	case SourceLocalFile:
		return parser.ReadFile(src.Path, parser.ReadOptions{
			SheetName: src.SheetName,
			Separator: src.Separator,
		})
	default:
		return nil, fmt.Errorf("unsupported source kind %d", src.Kind)
	}
}

func (l *Loader) loadSpreadsheet(ctx context.Context, src Source) (*models.Table, error) {
	if l.Sheets == nil {
		return nil, fmt.Errorf("no worksheet reader configured")
	}
	rows, err := l.Sheets.ReadWorksheet(ctx, src.SpreadsheetID, src.Worksheet)
	if err != nil {
		return nil, err
	}
	slog.Debug("worksheet read", "spreadsheet", src.SpreadsheetID, "rows", len(rows))

	// Sheet values arrive as formatted text and stay that way.
	return parser.BuildTable(rows, parser.RowOptions{InferTypes: false, Strict: false})
}
