package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gonum.org/v1/plot"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/stats"
)

// Default reporter settings.
const (
	DefaultHeadRows       = 5
	DefaultMaxPlotColumns = 5
)

// Reporter prints the console summary of a table and emits its plots.
type Reporter struct {
	// Out receives the console report.
	Out io.Writer
	// Sink receives the rendered plots.
	Sink Sink
	// HeadRows is the number of rows shown in the preview.
	HeadRows int
	// MaxPlotColumns caps the columns in the correlation heat map.
	MaxPlotColumns int
	// Bins is the histogram bucket count.
	Bins int
}

// NewReporter returns a reporter writing to stdout with default settings.
func NewReporter(sink Sink) *Reporter {
	return &Reporter{
		Out:            os.Stdout,
		Sink:           sink,
		HeadRows:       DefaultHeadRows,
		MaxPlotColumns: DefaultMaxPlotColumns,
		Bins:           stats.DefaultBins,
	}
}

// Report prints the preview, column info and summary statistics, then
// emits the heat map, histogram and box plot. A table without numeric
// values skips plotting without error.
func (r *Reporter) Report(t *models.Table) error {
	fmt.Fprintf(r.Out, "Data loaded successfully. Showing first %d rows:\n", r.HeadRows)
	PrintHead(r.Out, t, r.HeadRows)

	fmt.Fprintln(r.Out, "\nDataset info:")
	PrintInfo(r.Out, t)

	fmt.Fprintln(r.Out, "\nStatistical summary (numeric columns):")
	if typed := typedNumeric(t); len(typed) > 0 {
		PrintDescribe(r.Out, stats.Describe(typed))
	} else {
		PrintDescribeText(r.Out, stats.DescribeText(t.Columns()))
	}

	numeric := t.Numeric()
	if len(numeric) == 0 {
		fmt.Fprintln(r.Out, "\nNo numeric columns found, skipping plots.")
		return nil
	}
	if r.MaxPlotColumns > 0 && len(numeric) > r.MaxPlotColumns {
		numeric = numeric[:r.MaxPlotColumns]
	}
	slog.Debug("plotting", "columns", len(numeric))

	heatmap, err := HeatmapPlot(numeric, stats.CorrelationMatrix(numeric))
	if err != nil {
		return err
	}
	if err := r.emit("heatmap", heatmap); err != nil {
		return err
	}

	first := numeric[0]
	if err := r.emit("histogram", HistogramPlot(first, stats.Histogram(first.Finite(), r.Bins))); err != nil {
		return err
	}

	box, err := BoxPlot(first)
	if err != nil {
		return err
	}
	return r.emit("boxplot", box)
}

func (r *Reporter) emit(name string, p *plot.Plot) error {
	path, err := r.Sink.Emit(name, p)
	if err != nil {
		return err
	}
	switch r.Sink.(type) {
	case FileSink, *FileSink:
		fmt.Fprintf(r.Out, "Saved %s to %s\n", name, path)
	default:
		slog.Debug("plot rendered", "name", name, "path", path)
	}
	return nil
}

// typedNumeric returns the columns whose cells are all numbers or missing.
func typedNumeric(t *models.Table) []models.NumericColumn {
	var out []models.NumericColumn
	for _, c := range t.Columns() {
		if !c.IsNumeric() {
			continue
		}
		values := make([]float64, len(c.Cells))
		for i, cell := range c.Cells {
			values[i] = cell.Float()
		}
		out = append(out, models.NumericColumn{Name: c.Name, Values: values})
	}
	return out
}
