package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the number of histogram buckets used by the reporter.
const DefaultBins = 30

// Bin is one histogram bucket covering [Low, High).
// The last bucket also includes its upper edge.
type Bin struct {
	Low   float64
	High  float64
	Count float64
}

// Histogram splits the NaN-free values into n equal-width buckets spanning
// their range. A constant sample is centred in a unit-wide range.
func Histogram(values []float64, n int) []Bin {
	if len(values) == 0 || n < 1 {
		return nil
	}

	x := append([]float64(nil), values...)
	sort.Float64s(x)

	lo, hi := x[0], x[len(x)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
		if lo == hi {
			lo, hi = math.Nextafter(lo, math.Inf(-1)), math.Nextafter(hi, math.Inf(1))
		}
	}

	dividers := spanEdges(n, lo, hi)
	edges := append([]float64(nil), dividers...)

	// stat.Histogram treats the last divider as exclusive.
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, x, nil)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i] = Bin{Low: edges[i], High: edges[i+1], Count: counts[i]}
	}
	return bins
}

// spanEdges returns n+1 equally spaced edges from lo to hi. When hi-lo
// overflows, the edges are interpolated term by term instead.
func spanEdges(n int, lo, hi float64) []float64 {
	edges := make([]float64, n+1)
	if !math.IsInf(hi-lo, 0) {
		return floats.Span(edges, lo, hi)
	}
	for i := range edges {
		t := float64(i) / float64(n)
		edges[i] = lo*(1-t) + hi*t
	}
	edges[0], edges[n] = lo, hi
	return edges
}
