package components

import (
	"fmt"
	"strings"

	"github.com/byanarant-ctrl/tgmoney/internal/money"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SliceColor returns the chart color for the slice at position i.
// Colors follow list position, not category identity: if the service
// returns the breakdown in a different order, the colors move with the
// positions. Cosmetic and accepted.
func SliceColor(i int) lipgloss.Color {
	palette := theme.Active.Palette()
	return palette[i%len(palette)]
}

// SliceWidths distributes barWidth across values proportionally.
// Every non-zero slice gets at least one cell; the largest slice absorbs
// the rounding remainder so widths sum to exactly barWidth.
func SliceWidths(values []float64, barWidth int) []int {
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	widths := make([]int, len(values))
	if total <= 0 || barWidth <= 0 {
		return widths
	}

	used, largest := 0, 0
	for i, v := range values {
		if v <= 0 {
			continue
		}
		w := int(v / total * float64(barWidth))
		if w < 1 {
			w = 1
		}
		widths[i] = w
		used += w
		if values[i] > values[largest] {
			largest = i
		}
	}

	// Settle rounding drift on the largest slice.
	widths[largest] += barWidth - used
	if widths[largest] < 1 {
		widths[largest] = 1
	}
	return widths
}

// ProportionChart renders a per-category breakdown: one stacked bar with
// proportional colored slices, then a legend row per category with its
// total and share.
func ProportionChart(labels []string, values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return ""
	}

	barWidth := width
	if barWidth < 10 {
		barWidth = 10
	}
	widths := SliceWidths(values, barWidth)

	var bar strings.Builder
	for i := range values {
		if widths[i] <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(SliceColor(i))
		bar.WriteString(style.Render(strings.Repeat("█", widths[i])))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	shareStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	nameW := 0
	for _, l := range labels {
		if len(l) > nameW {
			nameW = len(l)
		}
	}
	if nameW > width-24 {
		nameW = width - 24
	}
	if nameW < 4 {
		nameW = 4
	}

	var b strings.Builder
	b.WriteString(bar.String())
	b.WriteString("\n")
	for i, label := range labels {
		swatch := lipgloss.NewStyle().Foreground(SliceColor(i)).Render("■")
		share := values[i] / total * 100
		if values[i] < 0 {
			share = 0
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			swatch,
			labelStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(label, nameW))),
			amountStyle.Render(fmt.Sprintf("%10s", money.Format(values[i]))),
			shareStyle.Render(fmt.Sprintf("%5.1f%%", share)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
