package tui

import (
	"fmt"

	"github.com/byanarant-ctrl/tgmoney/internal/money"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/components"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updatePlans(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		return a.navigate(PanelHome)
	case "j", "down":
		if a.plans.cursor < len(a.plans.items)-1 {
			a.plans.cursor++
		}
	case "k", "up":
		if a.plans.cursor > 0 {
			a.plans.cursor--
		}
	case "n":
		return a.openPlanCreate()
	case "enter":
		if p, ok := a.plans.selected(); ok {
			a.selectedPlanID = p.ID
			a.planDetail = nil
			a.planDetailErr = ""
			return a.navigate(PanelPlanDetail)
		}
	}
	return a, nil
}

func (a App) viewPlans(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var body string
	switch {
	case a.plans.errMsg != "":
		body = errStyle.Render(a.plans.errMsg)
	case len(a.plans.items) == 0:
		body = dimStyle.Render(emptyPlaceholder)
	default:
		inner := components.CardInnerWidth(cw)
		barW := inner - 8
		if barW < 10 {
			barW = 10
		}
		for i, p := range a.plans.items {
			style := nameStyle
			cursor := "  "
			if i == a.plans.cursor {
				style = selStyle
				cursor = "▸ "
			}
			body += cursor + style.Render(p.Title) + "\n"
			body += "  " + components.ProgressBar(p.Progress(), barW) + "\n"
			body += "  " + dimStyle.Render(fmt.Sprintf("%s of %s",
				money.Format(p.CurrentAmount), money.Format(p.TargetAmount))) + "\n"
		}
	}
	body += "\n" + dimStyle.Render("[enter] open  [n]ew plan")

	out := components.ContentCard("Savings Plans", body, cw)
	if res := a.results[PanelPlans]; res != "" {
		out += "\n " + resultStyle(res)
	}
	return out
}

func (a App) updatePlanDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The deposit input owns keys while open.
	if a.depositing {
		switch key {
		case "esc":
			a.depositing = false
			a.depositIn.SetValue("")
			return a, nil
		case "enter":
			return a.submitMutation(mutDepositPlan, mutationInput{
				PlanID: a.selectedPlanID,
				Amount: a.depositIn.Value(),
			})
		}
		var cmd tea.Cmd
		a.depositIn, cmd = a.depositIn.Update(msg)
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		return a.navigate(PanelPlans)
	case "d":
		a.depositing = true
		a.depositIn.SetValue("")
		a.depositIn.Focus()
		return a, a.depositIn.Cursor.BlinkCmd()
	case "u":
		if a.planDetail != nil {
			return a.openPlanEdit(*a.planDetail)
		}
	}
	return a, nil
}

func (a App) viewPlanDetail(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.planDetailErr != "" {
		return components.ContentCard("Plan", errStyle.Render(a.planDetailErr), cw)
	}
	if a.planDetail == nil {
		return components.ContentCard("Plan", dimStyle.Render("loading…"), cw)
	}

	p := a.planDetail
	inner := components.CardInnerWidth(cw)
	barW := inner - 8
	if barW < 10 {
		barW = 10
	}

	var body string
	if p.Description != "" {
		body += textStyle.Render(p.Description) + "\n\n"
	}
	body += components.ProgressBar(p.Progress(), barW) + "\n\n"
	body += textStyle.Render("Saved    "+money.Format(p.CurrentAmount)) + "\n"
	body += textStyle.Render("Target   "+money.Format(p.TargetAmount)) + "\n"
	body += textStyle.Render("To go    "+money.Format(p.Remaining())) + "\n"
	if a.depositing {
		body += "\n" + textStyle.Render("Deposit: ") + a.depositIn.View() + "\n"
	}
	body += "\n" + dimStyle.Render("[d]eposit  [u]pdate  [esc] back")

	out := components.ContentCard(p.Title, body, cw)
	if res := a.results[PanelPlanDetail]; res != "" {
		out += "\n " + resultStyle(res)
	}
	return out
}
