package tui

import (
	"strings"

	"github.com/byanarant-ctrl/tgmoney/internal/tui/components"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// resultStyle renders a panel result-region message.
func resultStyle(msg string) string {
	return lipgloss.NewStyle().Foreground(theme.Active.Yellow).Render(msg)
}

// View implements tea.Model: header, the active panel's content, and the
// status bar.
func (a App) View() string {
	w := a.width
	if w <= 0 {
		w = 80
	}
	h := a.height
	if h <= 0 {
		h = 24
	}

	if a.panel == PanelError {
		return a.frame(w, h, a.viewError(w))
	}
	if !a.initialized {
		return a.frame(w, h, a.viewLoading())
	}

	cw := w - 2
	if cw > 72 {
		cw = 72
	}

	var content string
	switch a.panel {
	case PanelHome:
		content = a.viewHome(cw)
	case PanelIncome, PanelExpense:
		content = a.viewEntryPanel(cw)
	case PanelPlans:
		content = a.viewPlans(cw)
	case PanelPlanCreate:
		content = a.viewPlanForm(cw)
	case PanelPlanDetail:
		content = a.viewPlanDetail(cw)
	case PanelSettings:
		content = a.viewSettings(cw)
	case PanelTransactionEdit:
		content = a.viewEditForm(cw)
	case PanelStats:
		content = a.viewStats(cw)
	}

	return a.frame(w, h, content)
}

// frame lays out header, content, and status bar to fill the terminal.
func (a App) frame(w, h int, content string) string {
	header := components.RenderHeader(a.panel.Title(), w)
	bar := components.RenderStatusBar(w, a.sess.Balance, a.sess.Mode, a.busy)

	body := lipgloss.NewStyle().PaddingLeft(1).Render(content)
	bodyH := h - lipgloss.Height(header) - lipgloss.Height(bar) - 1
	if bodyH < 1 {
		bodyH = 1
	}
	body = fitHeight(body, bodyH)

	return header + "\n" + body + "\n" + bar
}

// fitHeight pads or truncates a block to exactly n lines.
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (a App) viewLoading() string {
	dim := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
	return "\n " + a.spinner.View() + dim.Render(" connecting…")
}

func (a App) viewError(w int) string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	text := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	cw := w - 2
	if cw > 60 {
		cw = 60
	}
	body := title.Render("Something went wrong") + "\n\n" +
		text.Render(a.errMsg) + "\n\n" +
		dim.Render("[q] quit")
	return components.ContentCard("", body, cw)
}

func (a App) viewPlanForm(cw int) string {
	title := "New plan"
	if a.planEditID != 0 {
		title = "Update plan"
	}

	var body string
	if a.planForm != nil {
		body = a.planForm.View()
	} else if res := a.results[PanelPlanCreate]; res != "" {
		body = resultStyle(res) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("[esc] back")
	}
	return components.ContentCard(title, body, cw)
}

func (a App) viewEditForm(cw int) string {
	var body string
	if a.editForm != nil {
		body = a.editForm.View()
	} else if res := a.results[PanelTransactionEdit]; res != "" {
		body = resultStyle(res) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("[esc] back")
	}
	return components.ContentCard("Edit entry", body, cw)
}
