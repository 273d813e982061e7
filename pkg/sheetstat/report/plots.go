package report

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/stats"
)

var (
	barColor  = color.RGBA{R: 76, G: 114, B: 176, A: 255}
	nanColor  = color.Gray{Y: 220}
	edgeColor = color.Black
)

// valueTicks places default ticks, falling back to the end points when
// the axis span overflows float64.
type valueTicks struct{}

func (valueTicks) Ticks(min, max float64) []plot.Tick {
	if math.IsInf(max-min, 0) {
		return []plot.Tick{
			{Value: min, Label: strconv.FormatFloat(min, 'g', 3, 64)},
			{Value: max, Label: strconv.FormatFloat(max, 'g', 3, 64)},
		}
	}
	return plot.DefaultTicks{}.Ticks(min, max)
}

// halfScale is a linear scale computed on halved values so that ranges
// wider than math.MaxFloat64 still normalise to finite positions.
type halfScale struct{}

func (halfScale) Normalize(min, max, x float64) float64 {
	return (x/2 - min/2) / (max/2 - min/2)
}

// corrGrid exposes a correlation matrix as a heat map grid with row 0 of
// the matrix drawn at the top.
type corrGrid struct {
	m *mat.SymDense
	n int
}

func (g corrGrid) Dims() (c, r int)   { return g.n, g.n }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(g.n-1-r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// HeatmapPlot draws an annotated correlation heat map on a [-1, 1]
// diverging palette.
func HeatmapPlot(cols []models.NumericColumn, corr *mat.SymDense) (*plot.Plot, error) {
	n := len(cols)
	if n == 0 || corr == nil {
		return nil, fmt.Errorf("heatmap needs at least one column")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Correlation Heatmap of First %d Numeric Columns", n)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	grid := corrGrid{m: corr, n: n}
	hm := plotter.NewHeatMap(grid, cm.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = nanColor
	p.Add(hm)

	xys := make(plotter.XYs, 0, n*n)
	labels := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := grid.Z(c, r)
			xys = append(xys, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			if math.IsNaN(v) {
				labels = append(labels, "NaN")
			} else {
				labels = append(labels, fmt.Sprintf("%.2f", v))
			}
		}
	}
	annot, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("failed to annotate heatmap: %w", err)
	}
	for i := range annot.TextStyle {
		annot.TextStyle[i].XAlign = draw.XCenter
		annot.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(annot)

	names := make([]string, n)
	reversed := make([]string, n)
	for i, c := range cols {
		names[i] = c.Name
		reversed[n-1-i] = c.Name
	}
	p.NominalX(names...)
	p.NominalY(reversed...)

	return p, nil
}

// HistogramPlot draws precomputed histogram buckets for one column.
func HistogramPlot(col models.NumericColumn, bins []stats.Bin) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Histogram of %s", col.Name)
	p.X.Label.Text = "Values"
	p.Y.Label.Text = "Frequency"
	p.X.Tick.Marker = valueTicks{}
	p.X.Scale = halfScale{}

	hbins := make([]plotter.HistogramBin, len(bins))
	width := 0.0
	for i, b := range bins {
		hbins[i] = plotter.HistogramBin{Min: b.Low, Max: b.High, Weight: b.Count}
		width = b.High - b.Low
	}

	h := &plotter.Histogram{Bins: hbins, Width: width, FillColor: barColor}
	h.LineStyle = plotter.DefaultLineStyle
	h.LineStyle.Color = edgeColor
	p.Add(h)

	return p
}

// BoxPlot draws a horizontal box plot of the column's finite values.
func BoxPlot(col models.NumericColumn) (*plot.Plot, error) {
	values := col.Finite()
	if len(values) == 0 {
		return nil, fmt.Errorf("column %q has no numeric values", col.Name)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Boxplot for %s", col.Name)
	p.X.Label.Text = col.Name
	p.X.Tick.Marker = valueTicks{}
	p.X.Scale = halfScale{}

	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return nil, fmt.Errorf("failed to build boxplot: %w", err)
	}
	b.Horizontal = true
	b.FillColor = barColor
	p.Add(b)
	p.HideY()

	return p, nil
}
