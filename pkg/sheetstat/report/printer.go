package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/models"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/stats"
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// PrintHead writes the first n rows with a leading row index.
func PrintHead(w io.Writer, t *models.Table, n int) {
	head := t.Head(n)
	headers := append([]string{""}, head.Names()...)
	rows := make([][]string, head.NumRows())
	for i := range rows {
		row := []string{strconv.Itoa(i)}
		for _, cell := range head.Row(i) {
			row = append(row, cell.String())
		}
		rows[i] = row
	}
	fmt.Fprintln(w, renderTable(headers, rows))
}

// PrintInfo writes the shape, per-column non-missing counts and dtypes.
func PrintInfo(w io.Writer, t *models.Table) {
	n := t.NumRows()
	if n == 0 {
		fmt.Fprintln(w, "RangeIndex: 0 entries")
	} else {
		fmt.Fprintf(w, "RangeIndex: %d entries, 0 to %d\n", n, n-1)
	}
	fmt.Fprintf(w, "Data columns (total %d columns):\n", t.NumCols())

	dtypes := make(map[string]int)
	rows := make([][]string, 0, t.NumCols())
	for i, c := range t.Columns() {
		dtype := c.Dtype()
		dtypes[dtype]++
		rows = append(rows, []string{
			strconv.Itoa(i),
			c.Name,
			fmt.Sprintf("%d non-null", c.NonMissing()),
			dtype,
		})
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Column", "Non-Null Count", "Dtype"}, rows))

	names := make([]string, 0, len(dtypes))
	for d := range dtypes {
		names = append(names, d)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, d := range names {
		parts[i] = fmt.Sprintf("%s(%d)", d, dtypes[d])
	}
	fmt.Fprintf(w, "dtypes: %s\n", strings.Join(parts, ", "))
}

// PrintDescribe writes count, mean, std, min, quartiles and max for each
// summary, one column per source column.
func PrintDescribe(w io.Writer, summaries []stats.Summary) {
	headers := []string{""}
	for _, s := range summaries {
		headers = append(headers, s.Name)
	}

	fields := []struct {
		label string
		value func(stats.Summary) float64
	}{
		{"count", func(s stats.Summary) float64 { return float64(s.Count) }},
		{"mean", func(s stats.Summary) float64 { return s.Mean }},
		{"std", func(s stats.Summary) float64 { return s.Std }},
		{"min", func(s stats.Summary) float64 { return s.Min }},
		{"25%", func(s stats.Summary) float64 { return s.Q1 }},
		{"50%", func(s stats.Summary) float64 { return s.Median }},
		{"75%", func(s stats.Summary) float64 { return s.Q3 }},
		{"max", func(s stats.Summary) float64 { return s.Max }},
	}

	rows := make([][]string, len(fields))
	for i, f := range fields {
		row := []string{f.label}
		for _, s := range summaries {
			row = append(row, formatStat(f.value(s)))
		}
		rows[i] = row
	}
	fmt.Fprintln(w, renderTable(headers, rows))
}

// PrintDescribeText writes count, unique, top and freq for each column.
func PrintDescribeText(w io.Writer, summaries []stats.TextSummary) {
	headers := []string{""}
	count := []string{"count"}
	unique := []string{"unique"}
	top := []string{"top"}
	freq := []string{"freq"}
	for _, s := range summaries {
		headers = append(headers, s.Name)
		count = append(count, strconv.Itoa(s.Count))
		unique = append(unique, strconv.Itoa(s.Unique))
		top = append(top, s.Top)
		freq = append(freq, strconv.Itoa(s.Freq))
	}
	fmt.Fprintln(w, renderTable(headers, [][]string{count, unique, top, freq}))
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
