// Package components provides reusable widgets for the tgmoney panels.
package components

import (
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ContentCard renders a bordered content card with an optional title.
// outerWidth is the total rendered width including the border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// MenuCard renders one home-panel navigation card: a shortcut key and a
// label, highlighted when selected.
func MenuCard(key, label string, selected bool, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	if selected {
		border = t.BorderAccent
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if selected {
		labelStyle = labelStyle.Bold(true)
	}

	return cardStyle.Render(keyStyle.Render("["+key+"] ") + labelStyle.Render(label))
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
