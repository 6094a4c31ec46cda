package tui

import (
	"github.com/byanarant-ctrl/tgmoney/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

// menuEntry is one home-panel navigation card.
type menuEntry struct {
	key   string
	label string
	panel Panel
}

var menu = []menuEntry{
	{"i", "Income", PanelIncome},
	{"e", "Expenses", PanelExpense},
	{"p", "Savings Plans", PanelPlans},
	{"t", "Statistics", PanelStats},
	{"s", "Settings", PanelSettings},
}

func (a App) updateHome(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.menuCursor < len(menu)-1 {
			a.menuCursor++
		}
		return a, nil
	case "k", "up":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
		return a, nil
	case "enter":
		return a.navigate(menu[a.menuCursor].panel)
	}

	for _, m := range menu {
		if key == m.key {
			return a.navigate(m.panel)
		}
	}
	return a, nil
}

func (a App) viewHome(cw int) string {
	cardW := cw - 2
	if cardW > 44 {
		cardW = 44
	}

	var out string
	for i, m := range menu {
		out += components.MenuCard(m.key, m.label, i == a.menuCursor, cardW) + "\n"
	}
	return out
}
