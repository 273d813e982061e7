package gsheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cast"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client reads worksheet values from the Sheets API.
type Client struct {
	srv *sheets.Service
}

// NewClient creates a Sheets client authorised by creds. Extra options are
// applied after the token source.
func NewClient(ctx context.Context, creds *Credentials, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithTokenSource(creds.TokenSource)}, opts...)
	return NewClientWithOptions(ctx, opts...)
}

// NewClientWithOptions creates a Sheets client from raw client options.
func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return &Client{srv: srv}, nil
}

// WorksheetTitles returns the worksheet titles in spreadsheet order.
func (c *Client) WorksheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	resp, err := c.srv.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, WrapError(err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		titles = append(titles, sheet.Properties.Title)
	}
	return titles, nil
}

// ReadWorksheet returns every formatted value of the worksheet at the
// zero-based index. Rows are padded with empty strings to equal width.
func (c *Client) ReadWorksheet(ctx context.Context, spreadsheetID string, index int) ([][]string, error) {
	titles, err := c.WorksheetTitles(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(titles) {
		return nil, fmt.Errorf("%w: index %d (spreadsheet has %d)", ErrWorksheetNotFound, index, len(titles))
	}

	title := titles[index]
	slog.Debug("reading worksheet", "spreadsheet", spreadsheetID, "index", index, "title", title)

	resp, err := c.srv.Spreadsheets.Values.Get(spreadsheetID, quoteSheetTitle(title)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, WrapError(err)
	}

	return toRows(resp.Values), nil
}

// quoteSheetTitle renders a title as an A1 range covering the whole sheet.
func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func toRows(values [][]interface{}) [][]string {
	width := 0
	for _, row := range values {
		if len(row) > width {
			width = len(row)
		}
	}

	rows := make([][]string, len(values))
	for i, row := range values {
		out := make([]string, width)
		for j, val := range row {
			out[j] = cast.ToString(val)
		}
		rows[i] = out
	}
	return rows
}
