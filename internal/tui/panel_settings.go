package tui

import (
	"strconv"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/components"
	"github.com/byanarant-ctrl/tgmoney/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// canKick reports whether the kick control applies to a member row: only
// the owner sees it, and never on their own row.
func (a App) canKick(m budget.Member) bool {
	return a.sess.IsOwner && m.TelegramID != a.sess.TelegramID
}

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The join input owns keys while open.
	if a.joining {
		switch key {
		case "esc":
			a.joining = false
			a.joinIn.SetValue("")
			return a, nil
		case "enter":
			return a.submitMutation(mutJoin, mutationInput{Code: a.joinIn.Value()})
		}
		var cmd tea.Cmd
		a.joinIn, cmd = a.joinIn.Update(msg)
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		return a.navigate(PanelHome)
	case "j", "down":
		if a.members.cursor < len(a.members.members)-1 {
			a.members.cursor++
		}
	case "k", "up":
		if a.members.cursor > 0 {
			a.members.cursor--
		}
	case "m":
		next := budget.Shared
		if a.sess.Mode == budget.Shared {
			next = budget.Personal
		}
		return a.submitMutation(mutSwitchMode, mutationInput{
			Mode:      next,
			HasShared: a.sess.HasShared,
		})
	case "c":
		return a.submitMutation(mutCreateInvite, mutationInput{})
	case "o":
		a.joining = true
		a.joinIn.SetValue("")
		a.joinIn.Focus()
		return a, a.joinIn.Cursor.BlinkCmd()
	case "l":
		return a.submitMutation(mutLeave, mutationInput{})
	case "x":
		if m, ok := a.members.selected(); ok && a.canKick(m) {
			return a.submitMutation(mutKick, mutationInput{
				TargetID: strconv.FormatInt(m.TelegramID, 10),
			})
		}
	}
	return a, nil
}

func (a App) viewSettings(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var info string
	info += textStyle.Render("Active budget  "+string(a.sess.Mode)) + "\n"
	role := "member"
	if a.sess.IsOwner {
		role = "owner"
	}
	info += textStyle.Render("Role           "+role) + "\n"
	if a.inviteCode != "" {
		info += textStyle.Render("Invite code    ") + selStyle.Render(a.inviteCode) + "\n"
	}
	infoCard := components.ContentCard("Budget", info, cw)

	var rows string
	switch {
	case a.members.errMsg != "":
		rows = errStyle.Render(a.members.errMsg)
	case len(a.members.members) == 0:
		rows = dimStyle.Render(emptyPlaceholder)
	default:
		for i, m := range a.members.members {
			cursor := "  "
			style := textStyle
			if i == a.members.cursor {
				cursor = "▸ "
				style = selStyle
			}
			row := m.DisplayName
			if m.TelegramID == a.sess.TelegramID {
				row += " (you)"
			}
			if i == a.members.cursor && a.canKick(m) {
				row += dimStyle.Render("  [x] remove")
			}
			rows += cursor + style.Render(row) + "\n"
		}
	}
	if a.joining {
		rows += "\n" + textStyle.Render("Code: ") + a.joinIn.View() + "\n"
	}
	rows += "\n" + dimStyle.Render("[m]ode  [c]reate invite  j[o]in  [l]eave")
	memberCard := components.ContentCard("Members", rows, cw)

	out := infoCard + "\n" + memberCard
	if res := a.results[PanelSettings]; res != "" {
		out += "\n " + resultStyle(res)
	}
	return out
}
