package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goaltrack/goaltrack/internal/calc"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateLogTime, stateEditGoal:
		content = m.form.View()
	case stateConfirmDelete:
		content = m.viewConfirmDelete()
	case stateConfirmReset:
		content = m.viewConfirmReset()
	default:
		content = m.viewGoals()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("goaltrack")
	total := dimStyle.Render(fmt.Sprintf("%.1f h total", m.ctx.Docs.TotalHours()))
	mode := ""
	if m.darkMode {
		mode = dimStyle.Render("  dark")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", total, mode)
}

func (m Model) viewGoals() string {
	if len(m.goals) == 0 {
		return docStyle.Render("No goals yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, g := range m.goals {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		name := fmt.Sprintf("%s %s", g.Emoji, g.Name)
		if g.Color != "" {
			name = lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Render(name)
		}
		if i == m.cursor {
			name = selectedStyle.Render(fmt.Sprintf("%s %s", g.Emoji, g.Name))
		}

		line := fmt.Sprintf("%s%-30s %8s h", cursor, name, calc.FormatHours(g.TotalHours))

		if m.ctx.Tracker.Running(g.ID) {
			line += runningStyle.Render(fmt.Sprintf("  ▶ %s", calc.FormatElapsed(m.ctx.Tracker.Elapsed(g.ID))))
		}

		if len(g.Milestones) > 0 {
			reached := 0
			for _, ms := range g.Milestones {
				if calc.MilestoneReached(g.TotalHours, ms) {
					reached++
				}
			}
			stars := strings.Repeat("★", reached) + strings.Repeat("☆", len(g.Milestones)-reached)
			line += "  " + warningStyle.Render(stars)
		}

		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	return statusStyle.Render("  " + m.statusMsg)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and its %d time entries?", m.deletingGoal.Name, len(m.deletingGoal.Entries))),
			"",
			"[e] 💾 Export now & delete",
			"[y] Delete",
			"[n] Cancel",
		),
	)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Reset ALL goals and time entries?"),
			warningStyle.Render("This cannot be undone. Make sure you have exported your data!"),
			"",
			"[e] 💾 Export now & reset",
			"[y] I have exported my data, reset everything",
			"[n] Cancel",
		),
	)
}
