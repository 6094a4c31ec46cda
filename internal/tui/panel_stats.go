package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/money"
	"github.com/byanarant-ctrl/tgmoney/internal/stats"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/components"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runStats starts a report fetch for an absolute window.
func (a App) runStats(start, end time.Time) (App, tea.Cmd) {
	if !a.guard.Ensure() {
		return a.fatal(), nil
	}

	typ := a.statsView.typ
	client := a.client
	a.busy = true
	a.statsView.errMsg = ""
	return a, func() tea.Msg {
		report, err := stats.Fetch(context.Background(), client, typ, start, end)
		if err != nil {
			return statsDoneMsg{errMsg: err.Error()}
		}
		return statsDoneMsg{report: report}
	}
}

// runStatsPeriod resolves a named period and starts the fetch.
func (a App) runStatsPeriod(period string) (App, tea.Cmd) {
	start, end, err := stats.PeriodWindow(period, time.Now())
	if err != nil {
		a.statsView.errMsg = err.Error()
		return a, nil
	}
	a.statsView.period = period
	a.statsView.custom = false
	return a.runStats(start, end)
}

func (a App) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	sv := &a.statsView

	// Custom range date entry.
	if sv.editing {
		switch key {
		case "esc":
			sv.editing = false
			sv.startIn.Blur()
			sv.endIn.Blur()
			return a, nil
		case "tab", "shift+tab":
			if sv.startIn.Focused() {
				sv.startIn.Blur()
				sv.endIn.Focus()
			} else {
				sv.endIn.Blur()
				sv.startIn.Focus()
			}
			return a, nil
		case "enter":
			start, end, err := stats.RangeWindow(sv.startIn.Value(), sv.endIn.Value())
			if err != nil {
				sv.errMsg = err.Error()
				return a, nil
			}
			sv.editing = false
			sv.custom = true
			sv.startIn.Blur()
			sv.endIn.Blur()
			return a.runStats(start, end)
		}
		var cmd tea.Cmd
		if sv.startIn.Focused() {
			sv.startIn, cmd = sv.startIn.Update(msg)
		} else {
			sv.endIn, cmd = sv.endIn.Update(msg)
		}
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		return a.navigate(PanelHome)
	case "t":
		if sv.typ == budget.Expense {
			sv.typ = budget.Income
		} else {
			sv.typ = budget.Expense
		}
		if sv.custom {
			start, end, err := stats.RangeWindow(sv.startIn.Value(), sv.endIn.Value())
			if err == nil {
				return a.runStats(start, end)
			}
		}
		return a.runStatsPeriod(sv.period)
	case "w":
		return a.runStatsPeriod(stats.PeriodWeek)
	case "m":
		return a.runStatsPeriod(stats.PeriodMonth)
	case "y":
		return a.runStatsPeriod(stats.PeriodYear)
	case "c":
		sv.editing = true
		sv.errMsg = ""
		sv.endIn.Blur()
		sv.startIn.Focus()
		return a, sv.startIn.Cursor.BlinkCmd()
	}
	return a, nil
}

func (a App) viewStats(cw int) string {
	t := theme.Active
	sv := a.statsView
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	label := "Expenses"
	if sv.typ == budget.Income {
		label = "Income"
	}
	window := sv.period
	if sv.custom {
		window = "custom range"
	}

	var body string
	body += selStyle.Render(label) + textStyle.Render(" · "+window) + "\n\n"

	if sv.editing {
		body += textStyle.Render("From ") + sv.startIn.View() +
			textStyle.Render("  To ") + sv.endIn.View() + "\n\n"
	}

	switch {
	case sv.errMsg != "":
		body += errStyle.Render(sv.errMsg) + "\n"
	case sv.report == nil:
		body += dimStyle.Render("pick a period: [w]eek  [m]onth  [y]ear") + "\n"
	default:
		r := sv.report
		body += textStyle.Render(fmt.Sprintf("Total %s over %d entries",
			money.Format(r.Summary.Total), r.Summary.Count)) + "\n"
		body += dimStyle.Render(r.Start.Format("2006-01-02")+" — "+r.End.Format("2006-01-02")) + "\n\n"

		if len(r.Breakdown) == 0 {
			body += dimStyle.Render(emptyPlaceholder) + "\n"
		} else {
			inner := components.CardInnerWidth(cw)
			labels := make([]string, len(r.Breakdown))
			values := make([]float64, len(r.Breakdown))
			for i, ct := range r.Breakdown {
				labels[i] = ct.Category
				values[i] = ct.Total
			}
			body += components.ProportionChart(labels, values, inner) + "\n"
		}
	}

	body += "\n" + dimStyle.Render("[t]ype  [w/m/y] period  [c]ustom range")
	return components.ContentCard("Statistics", body, cw)
}
