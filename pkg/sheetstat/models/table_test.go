package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected Cell
	}{
		{"123", Number(123)},
		{"123.45", Number(123.45)},
		{" -100 ", Number(-100)},
		{"1e3", Number(1000)},
		{"hello", Text("hello")},
		{"", Missing()},
		{"NA", Missing()},
		{"n/a", Missing()},
		{"NAN", Missing()},
		{"null", Missing()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseValue(tt.input), "ParseValue(%q)", tt.input)
	}
}

func TestCellFloat(t *testing.T) {
	assert.Equal(t, 2.5, Number(2.5).Float())
	assert.Equal(t, 7.0, Text(" 7 ").Float())
	assert.True(t, math.IsNaN(Text("abc").Float()))
	assert.True(t, math.IsNaN(Missing().Float()))
	assert.True(t, math.IsNaN(Number(math.Inf(1)).Float()))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "0.125", Number(0.125).String())
	assert.Equal(t, "NaN", Missing().String())
	assert.Equal(t, "x", Text("x").String())
}

func TestUniqueNames(t *testing.T) {
	got := UniqueNames([]string{"a", "", "a", " b ", "a"})
	assert.Equal(t, []string{"a", "Unnamed: 1", "a.1", "b", "a.2"}, got)
}

func TestNewTable(t *testing.T) {
	tbl, err := NewTable([]string{"x", "y"}, [][]Cell{
		{Number(1), Text("a")},
		{Number(2)},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, []string{"x", "y"}, tbl.Names())
	assert.Equal(t, []Cell{Number(2), Missing()}, tbl.Row(1))

	y, ok := tbl.Column("y")
	require.True(t, ok)
	assert.Equal(t, 1, y.NonMissing())
	assert.Equal(t, "object", y.Dtype())

	_, ok = tbl.Column("z")
	assert.False(t, ok)
}

func TestNewTableRejectsLongRows(t *testing.T) {
	_, err := NewTable([]string{"x"}, [][]Cell{{Number(1), Number(2)}})
	assert.ErrorIs(t, err, ErrRaggedTable)
}

func TestDtype(t *testing.T) {
	tests := []struct {
		cells    []Cell
		expected string
	}{
		{[]Cell{Number(1), Number(2)}, "int64"},
		{[]Cell{Number(1), Missing()}, "float64"},
		{[]Cell{Number(1.5)}, "float64"},
		{[]Cell{Missing()}, "float64"},
		{[]Cell{Number(1), Text("x")}, "object"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Column{Cells: tt.cells}.Dtype())
	}
}

func TestHead(t *testing.T) {
	rows := make([][]Cell, 8)
	for i := range rows {
		rows[i] = []Cell{Number(float64(i))}
	}
	tbl, err := NewTable([]string{"n"}, rows)
	require.NoError(t, err)

	head := tbl.Head(5)
	assert.Equal(t, 5, head.NumRows())
	assert.Equal(t, Number(4), head.Row(4)[0])
	assert.Equal(t, 8, tbl.Head(20).NumRows())
}

func TestNumeric(t *testing.T) {
	tbl, err := NewTable([]string{"num", "text", "mixed"}, [][]Cell{
		{Number(1), Text("a"), Text("3")},
		{Number(2), Text("b"), Text("x")},
	})
	require.NoError(t, err)

	numeric := tbl.Numeric()
	require.Len(t, numeric, 2)
	assert.Equal(t, "num", numeric[0].Name)
	assert.Equal(t, []float64{1, 2}, numeric[0].Values)
	assert.Equal(t, "mixed", numeric[1].Name)
	assert.Equal(t, 3.0, numeric[1].Values[0])
	assert.True(t, math.IsNaN(numeric[1].Values[1]))
	assert.Equal(t, []float64{3}, numeric[1].Finite())
}

func TestEqual(t *testing.T) {
	a, err := NewTable([]string{"x"}, [][]Cell{{Number(1)}})
	require.NoError(t, err)
	b, err := NewTable([]string{"x"}, [][]Cell{{Number(1)}})
	require.NoError(t, err)
	c, err := NewTable([]string{"x"}, [][]Cell{{Text("1")}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
