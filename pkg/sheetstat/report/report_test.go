package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/stats"
)

func numericTable(t *testing.T) *models.Table {
	t.Helper()
	rows := [][]models.Cell{
		{models.Number(1), models.Number(10), models.Text("a")},
		{models.Number(2), models.Number(8), models.Text("b")},
		{models.Number(3), models.Missing(), models.Text("a")},
		{models.Number(4), models.Number(3), models.Text("c")},
		{models.Number(5), models.Number(1), models.Text("a")},
		{models.Number(6), models.Number(0), models.Text("b")},
	}
	tbl, err := models.NewTable([]string{"pm25", "o3", "station"}, rows)
	require.NoError(t, err)
	return tbl
}

func textTable(t *testing.T) *models.Table {
	t.Helper()
	rows := [][]models.Cell{
		{models.Text("north"), models.Text("high")},
		{models.Text("south"), models.Text("low")},
	}
	tbl, err := models.NewTable([]string{"region", "level"}, rows)
	require.NoError(t, err)
	return tbl
}

type recordingSink struct {
	names []string
}

func (s *recordingSink) Emit(name string, _ *plot.Plot) (string, error) {
	s.names = append(s.names, name)
	return name, nil
}

func TestReportSkipsPlotsWithoutNumericColumns(t *testing.T) {
	var out bytes.Buffer
	sink := &recordingSink{}
	r := NewReporter(sink)
	r.Out = &out

	require.NoError(t, r.Report(textTable(t)))
	assert.Empty(t, sink.names)
	assert.Contains(t, out.String(), "No numeric columns found, skipping plots.")
	assert.Contains(t, out.String(), "unique")
}

func TestReportEmitsPlotsInOrder(t *testing.T) {
	var out bytes.Buffer
	sink := &recordingSink{}
	r := NewReporter(sink)
	r.Out = &out

	require.NoError(t, r.Report(numericTable(t)))
	assert.Equal(t, []string{"heatmap", "histogram", "boxplot"}, sink.names)

	text := out.String()
	assert.Contains(t, text, "Data loaded successfully. Showing first 5 rows:")
	assert.Contains(t, text, "Dataset info:")
	assert.Contains(t, text, "Statistical summary (numeric columns):")
	assert.NotContains(t, text, "Saved")
}

func TestReportSavesThreeFiles(t *testing.T) {
	dir := t.TempDir()
	r := NewReporter(FileSink{Prefix: filepath.Join(dir, "aq_")})

	var out bytes.Buffer
	r.Out = &out

	require.NoError(t, r.Report(numericTable(t)))
	assert.Contains(t, out.String(), "Saved heatmap to "+filepath.Join(dir, "aq_heatmap.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"aq_boxplot.png", "aq_heatmap.png", "aq_histogram.png"}, names)
}

func TestReportDisplayWritesNothingUnderPrefix(t *testing.T) {
	dir := t.TempDir()
	var opened []string
	sink := &ViewerSink{Open: func(path string) error {
		opened = append(opened, path)
		return nil
	}}
	r := NewReporter(sink)
	r.Out = &bytes.Buffer{}
	t.Cleanup(func() {
		if sink.dir != "" {
			os.RemoveAll(sink.dir)
		}
	})

	require.NoError(t, r.Report(numericTable(t)))

	assert.Len(t, opened, 3)
	for _, p := range opened {
		assert.FileExists(t, p)
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPrintHead(t *testing.T) {
	var out bytes.Buffer
	PrintHead(&out, numericTable(t), 2)

	text := out.String()
	assert.Contains(t, text, "pm25")
	assert.Contains(t, text, "station")
	assert.Contains(t, text, "10")
	assert.NotContains(t, text, "NaN")
}

func TestPrintInfo(t *testing.T) {
	var out bytes.Buffer
	PrintInfo(&out, numericTable(t))

	text := out.String()
	assert.Contains(t, text, "RangeIndex: 6 entries, 0 to 5")
	assert.Contains(t, text, "Data columns (total 3 columns):")
	assert.Contains(t, text, "5 non-null")
	assert.Contains(t, text, "dtypes: float64(1), int64(1), object(1)")
}

func TestPrintDescribe(t *testing.T) {
	var out bytes.Buffer
	PrintDescribe(&out, []stats.Summary{stats.Summarize("x", []float64{1, 2, 3, 4})})

	text := out.String()
	assert.Contains(t, text, "count")
	assert.Contains(t, text, "4.000000")
	assert.Contains(t, text, "2.500000")
}

func TestPrintDescribeNaN(t *testing.T) {
	var out bytes.Buffer
	PrintDescribe(&out, []stats.Summary{stats.Summarize("x", []float64{7})})
	assert.Contains(t, out.String(), "NaN")
}

func TestReportDisplayContinuesWhenViewerFails(t *testing.T) {
	var attempts int
	sink := &ViewerSink{Open: func(string) error {
		attempts++
		return errors.New(`exec: "xdg-open": executable file not found in $PATH`)
	}}
	var out bytes.Buffer
	r := NewReporter(sink)
	r.Out = &out

	require.NoError(t, r.Report(numericTable(t)))
	assert.Equal(t, 3, attempts)
	assert.NotContains(t, out.String(), "Saved")

	dir := sink.dir
	require.NotEmpty(t, dir)
	require.NoError(t, sink.Close())
	assert.NoDirExists(t, dir)
}

func TestViewerSinkKeepsOpenedFiles(t *testing.T) {
	sink := &ViewerSink{Open: func(string) error { return nil }}
	path, err := sink.Emit("boxplot", plot.New())
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(filepath.Dir(path)) })

	require.NoError(t, sink.Close())
	assert.FileExists(t, path)
}

func TestValueTicksWideRange(t *testing.T) {
	ticks := valueTicks{}.Ticks(-1.7e308, 1.7e308)
	require.Len(t, ticks, 2)
	assert.Equal(t, -1.7e308, ticks[0].Value)
	assert.Equal(t, 1.7e308, ticks[1].Value)

	assert.NotEmpty(t, valueTicks{}.Ticks(0, 10))
}

func TestHalfScale(t *testing.T) {
	assert.Equal(t, 0.25, halfScale{}.Normalize(0, 8, 2))
	assert.Equal(t, 1.0, halfScale{}.Normalize(-1.7e308, 1.7e308, 1.7e308))
	assert.Equal(t, 0.5, halfScale{}.Normalize(-1.7e308, 1.7e308, 0))
}

func TestHistogramPlotWideRange(t *testing.T) {
	col := models.NumericColumn{Name: "x", Values: []float64{-1.7e308, 1.7e308}}
	p := HistogramPlot(col, stats.Histogram(col.Finite(), stats.DefaultBins))

	path := filepath.Join(t.TempDir(), "wide.png")
	require.NoError(t, p.Save(PlotWidth, PlotHeight, path))
	assert.FileExists(t, path)
}
