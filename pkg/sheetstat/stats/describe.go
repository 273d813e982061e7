// Package stats computes the descriptive statistics, correlations and
// histogram buckets printed and plotted by the reporter.
package stats

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
)

// Summary holds descriptive statistics for one numeric column.
// Fields are NaN when the column has too few values to define them.
type Summary struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarises each numeric column, ignoring NaN values.
func Describe(cols []models.NumericColumn) []Summary {
	out := make([]Summary, 0, len(cols))
	for _, c := range cols {
		out = append(out, Summarize(c.Name, c.Finite()))
	}
	return out
}

// Summarize computes the summary of a NaN-free sample.
// Quartiles are Tukey hinges: medians of the lower and upper halves.
func Summarize(name string, data []float64) Summary {
	nan := math.NaN()
	s := Summary{
		Name: name, Count: len(data),
		Mean: nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan,
	}
	if len(data) == 0 {
		return s
	}

	s.Mean, _ = stats.Mean(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	s.Median, _ = stats.Median(data)

	if len(data) > 1 {
		s.Std, _ = stats.StandardDeviationSample(data)
		if q, err := stats.Quartile(data); err == nil {
			s.Q1, s.Q3 = q.Q1, q.Q3
		}
	} else {
		s.Q1, s.Q3 = data[0], data[0]
	}

	return s
}

// TextSummary holds the summary printed for non-numeric columns.
type TextSummary struct {
	Name   string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// DescribeText summarises each column by distinct values. Ties for the
// most frequent value go to the one seen first.
func DescribeText(cols []models.Column) []TextSummary {
	out := make([]TextSummary, 0, len(cols))
	for _, c := range cols {
		counts := make(map[string]int)
		var order []string
		s := TextSummary{Name: c.Name}
		for _, cell := range c.Cells {
			if cell.IsMissing() {
				continue
			}
			s.Count++
			v := cell.String()
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}
		s.Unique = len(order)
		for _, v := range order {
			if counts[v] > s.Freq {
				s.Top, s.Freq = v, counts[v]
			}
		}
		out = append(out, s)
	}
	return out
}
