package components

import (
	"fmt"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/money"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key hints on the left, the
// global balance and active mode on the right.
func RenderStatusBar(width int, balance float64, mode budget.Mode, busy bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [esc]back  [q]uit"
	if busy {
		left += "  syncing…"
	}

	modeLabel := "personal"
	if mode == budget.Shared {
		modeLabel = "shared"
	}
	right := fmt.Sprintf("%s · %s ", modeLabel, money.Format(balance))

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

// RenderHeader renders the panel title line.
func RenderHeader(title string, width int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)
	appStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	line := " " + titleStyle.Render("◈ tgmoney") + appStyle.Render(" · "+title)
	return lipgloss.NewStyle().Width(width).Render(line)
}
