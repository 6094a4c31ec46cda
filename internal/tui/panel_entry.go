package tui

import (
	"context"
	"fmt"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/money"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/components"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// summaryDoneMsg carries a period summary for a panel's result region.
type summaryDoneMsg struct {
	panel Panel
	text  string
}

// runSummary fetches the named-period total for the panel's type.
func (a App) runSummary(period string) (App, tea.Cmd) {
	if !a.guard.Ensure() {
		return a.fatal(), nil
	}

	panel := a.panel
	typ := panel.txType()
	client := a.client
	a.busy = true
	return a, func() tea.Msg {
		sum, err := client.Summary(context.Background(), typ, period)
		if err != nil {
			return summaryDoneMsg{panel: panel, text: err.Error()}
		}
		label := "Income"
		if typ == budget.Expense {
			label = "Expenses"
		}
		return summaryDoneMsg{
			panel: panel,
			text:  fmt.Sprintf("%s: %s (entries: %d)", label, money.Format(sum.Total), sum.Count),
		}
	}
}

// focusEntry moves keyboard focus between the panel's control zones.
func (a *App) focusEntry(f entryFocus) {
	a.focus = f
	a.amountIn.Blur()
	a.descIn.Blur()
	a.categoryIn.Blur()
	switch f {
	case focusAmount:
		a.amountIn.Focus()
	case focusDesc:
		a.descIn.Focus()
	case focusCategory:
		a.categoryIn.Focus()
	}
}

func (a App) updateEntryPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	typ := a.panel.txType()

	// Inline category editor intercepts keys while active.
	if a.catEdit != catEditNone {
		switch key {
		case "esc":
			a.catEdit = catEditNone
			return a, nil
		case "enter":
			name := a.catEditIn.Value()
			mode := a.catEdit
			a.catEdit = catEditNone
			if mode == catEditRename {
				return a.submitMutation(mutUpdateCategory, mutationInput{
					Type: typ, Name: name, CategoryID: a.catEditTarget,
				})
			}
			return a.submitMutation(mutAddCategory, mutationInput{Type: typ, Name: name})
		}
		var cmd tea.Cmd
		a.catEditIn, cmd = a.catEditIn.Update(msg)
		return a, cmd
	}

	switch key {
	case "esc":
		return a.navigate(PanelHome)
	case "tab":
		a.focusEntry((a.focus + 1) % 5)
		return a, nil
	case "shift+tab":
		a.focusEntry((a.focus + 4) % 5)
		return a, nil
	}

	// Text fields swallow everything else while focused.
	if a.focus == focusAmount || a.focus == focusDesc || a.focus == focusCategory {
		if key == "enter" {
			return a.submitMutation(mutAddTransaction, mutationInput{
				Type:        typ,
				Amount:      a.amountIn.Value(),
				Description: a.descIn.Value(),
				Category:    a.categoryIn.Value(),
			})
		}
		var cmd tea.Cmd
		switch a.focus {
		case focusAmount:
			a.amountIn, cmd = a.amountIn.Update(msg)
		case focusDesc:
			a.descIn, cmd = a.descIn.Update(msg)
		case focusCategory:
			a.categoryIn, cmd = a.categoryIn.Update(msg)
		}
		return a, cmd
	}

	// List zones: plain letters are available as shortcuts here.
	switch key {
	case "q":
		return a, tea.Quit
	case "w":
		return a.runSummary("week")
	case "m":
		return a.runSummary("month")
	case "y":
		return a.runSummary("year")
	}

	if a.focus == focusCatList {
		switch key {
		case "j", "down":
			if a.cats.cursor < len(a.cats.items)-1 {
				a.cats.cursor++
			}
		case "k", "up":
			if a.cats.cursor > 0 {
				a.cats.cursor--
			}
		case "enter":
			if c, ok := a.cats.selected(); ok {
				a.categoryIn.SetValue(c.Name)
			}
		case "a":
			a.catEdit = catEditAdd
			a.catEditIn.SetValue("")
			a.catEditIn.Placeholder = "new category"
			a.catEditIn.Focus()
			return a, a.catEditIn.Cursor.BlinkCmd()
		case "r":
			if c, ok := a.cats.selected(); ok {
				a.catEdit = catEditRename
				a.catEditTarget = c.ID
				a.catEditIn.SetValue(c.Name)
				a.catEditIn.Focus()
				return a, a.catEditIn.Cursor.BlinkCmd()
			}
		case "x":
			if c, ok := a.cats.selected(); ok {
				return a.submitMutation(mutDeleteCategory, mutationInput{Type: typ, CategoryID: c.ID})
			}
		}
		return a, nil
	}

	// Transaction list zone.
	switch key {
	case "j", "down":
		if a.tx.cursor < len(a.tx.items)-1 {
			a.tx.cursor++
		}
	case "k", "up":
		if a.tx.cursor > 0 {
			a.tx.cursor--
		}
	case "enter":
		if tx, ok := a.tx.selected(); ok {
			return a.openTransactionEdit(tx)
		}
	}
	return a, nil
}

func (a App) viewEntryPanel(cw int) string {
	t := theme.Active
	typ := a.panel.txType()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	focusStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	zone := func(f entryFocus, label string) string {
		if a.focus == f {
			return focusStyle.Render("▸ " + label)
		}
		return labelStyle.Render("  " + label)
	}

	var b string
	b += zone(focusAmount, "Amount   ") + " " + a.amountIn.View() + "\n"
	b += zone(focusDesc, "What for ") + " " + a.descIn.View() + "\n"
	b += zone(focusCategory, "Category ") + " " + a.categoryIn.View() + "\n"

	form := components.ContentCard("New entry", b, cw)

	// Category list with the inline editor.
	var cats string
	switch {
	case a.cats.errMsg != "":
		cats = errStyle.Render(a.cats.errMsg)
	case len(a.cats.items) == 0:
		cats = dimStyle.Render(emptyPlaceholder)
	default:
		for i, c := range a.cats.items {
			cursor := "  "
			style := labelStyle
			if a.focus == focusCatList && i == a.cats.cursor {
				cursor = "▸ "
				style = focusStyle
			}
			cats += cursor + style.Render(c.Name) + "\n"
		}
		cats += dimStyle.Render("[a]dd  [r]ename  [x] delete  [enter] use")
	}
	if a.catEdit != catEditNone {
		cats += "\n" + a.catEditIn.View()
	}
	catCard := components.ContentCard(zoneTitle("Categories", a.focus == focusCatList), cats, cw)

	// Today's transactions for the type.
	var rows string
	switch {
	case a.tx.errMsg != "":
		rows = errStyle.Render(a.tx.errMsg)
	case len(a.tx.items) == 0:
		rows = dimStyle.Render(emptyPlaceholder)
	default:
		for i, tx := range a.tx.items {
			cursor := "  "
			style := labelStyle
			if a.focus == focusTxList && i == a.tx.cursor {
				cursor = "▸ "
				style = focusStyle
			}
			rows += cursor + style.Render(transactionRow(tx)) + "\n"
		}
		rows += dimStyle.Render("[enter] edit  [w/m/y] summary")
	}
	title := "Today"
	if typ == budget.Income {
		title = "Today's income"
	} else {
		title = "Today's expenses"
	}
	txCard := components.ContentCard(zoneTitle(title, a.focus == focusTxList), rows, cw)

	out := form + "\n" + catCard + "\n" + txCard
	if res := a.results[a.panel]; res != "" {
		out += "\n " + resultStyle(res)
	}
	return out
}

func zoneTitle(title string, active bool) string {
	if active {
		return "▸ " + title
	}
	return title
}

// transactionRow renders one list row: amount, description, category,
// and who added it.
func transactionRow(tx budget.Transaction) string {
	row := money.Format(tx.Amount)
	if tx.Description != "" {
		row += " · " + tx.Description
	}
	if tx.Category != "" {
		row += " · " + tx.Category
	}
	if tx.AddedBy != "" {
		row += " — " + tx.AddedBy
	}
	return row
}
