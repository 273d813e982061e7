package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
)

// CorrelationMatrix computes Pearson correlations between columns using
// pairwise-complete observations. Pairs with fewer than two shared values
// or zero variance yield NaN, including on the diagonal.
func CorrelationMatrix(cols []models.NumericColumn) *mat.SymDense {
	n := len(cols)
	if n == 0 {
		return nil
	}
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, pairCorrelation(cols[i].Values, cols[j].Values))
		}
	}
	return m
}

func pairCorrelation(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if i >= len(y) {
			break
		}
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	// Rounding can push perfect correlations just past ±1.
	return math.Max(-1, math.Min(1, r))
}
