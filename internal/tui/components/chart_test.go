package components

import (
	"testing"

	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceWidthsSumToBar(t *testing.T) {
	cases := [][]float64{
		{10, 20, 70},
		{1, 1, 1},
		{99.9, 0.1},
		{5},
	}
	for _, values := range cases {
		widths := SliceWidths(values, 40)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, 40, sum, "values %v", values)
	}
}

func TestSliceWidthsMinimumCell(t *testing.T) {
	// A tiny slice still gets one visible cell.
	widths := SliceWidths([]float64{0.5, 999.5}, 20)
	assert.GreaterOrEqual(t, widths[0], 1)
}

func TestSliceWidthsSkipsNonPositive(t *testing.T) {
	widths := SliceWidths([]float64{0, 50, -3, 50}, 30)
	assert.Zero(t, widths[0])
	assert.Zero(t, widths[2])
	assert.Equal(t, 30, widths[1]+widths[3])
}

func TestSliceWidthsEmptyTotal(t *testing.T) {
	assert.Equal(t, []int{0, 0}, SliceWidths([]float64{0, 0}, 20))
}

func TestSliceColorRotates(t *testing.T) {
	palette := theme.Active.Palette()
	require.NotEmpty(t, palette)

	assert.Equal(t, palette[0], SliceColor(0))
	assert.Equal(t, palette[1], SliceColor(1))
	assert.Equal(t, palette[0], SliceColor(len(palette)), "wraps around")
}

func TestProportionChartEmpty(t *testing.T) {
	assert.Empty(t, ProportionChart(nil, nil, 40))
	assert.Empty(t, ProportionChart([]string{"a"}, []float64{0}, 40))
}

func TestProgressBarClamps(t *testing.T) {
	// Rendered width stays fixed regardless of out-of-range input.
	full := ProgressBar(1.7, 10)
	none := ProgressBar(-0.2, 10)
	assert.Contains(t, full, "100%")
	assert.Contains(t, none, "0%")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long…", truncate("longer name", 5))
	assert.Equal(t, "", truncate("anything", 0))
}
