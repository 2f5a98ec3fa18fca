package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/goaltrack/goaltrack/internal/calc"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case TickMsg:
		if m.ctx.Tracker.ActiveCount() > 0 {
			return m, tick()
		}
		return m, nil
	}

	switch m.state {
	case stateLogTime:
		return m.updateLogTime(msg)
	case stateEditGoal:
		return m.updateEditGoal(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case stateConfirmReset:
		return m.updateConfirmReset(msg)
	}
	return m.updateGoals(msg)
}

func (m Model) updateGoals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.ctx.SaveTracker()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.goals)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Timer):
		return m.toggleTimer()

	case key.Matches(keyMsg, m.keys.Log):
		goal := m.selectedGoal()
		if goal == nil {
			return m, nil
		}
		m.logForm = &LogFormModel{}
		m.form = newLogForm(m.logForm, goal.Name)
		m.editingGoalID = goal.ID
		m.state = stateLogTime
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Add):
		_, goal := m.ctx.Docs.AddGoal()
		m.refreshGoals()
		for i, g := range m.goals {
			if g.ID == goal.ID {
				m.cursor = i
			}
		}
		m.goalForm = &GoalFormModel{Name: goal.Name, Emoji: goal.Emoji}
		m.form = newGoalForm(m.goalForm)
		m.editingGoalID = goal.ID
		m.state = stateEditGoal
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Edit):
		goal := m.selectedGoal()
		if goal == nil {
			return m, nil
		}
		m.goalForm = &GoalFormModel{
			Name:       goal.Name,
			Emoji:      goal.Emoji,
			Milestones: joinMilestones(goal.Milestones),
		}
		m.form = newGoalForm(m.goalForm)
		m.editingGoalID = goal.ID
		m.state = stateEditGoal
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Delete):
		goal := m.selectedGoal()
		if goal == nil {
			return m, nil
		}
		m.deletingGoal = *goal
		m.state = stateConfirmDelete

	case key.Matches(keyMsg, m.keys.Reset):
		m.state = stateConfirmReset

	case key.Matches(keyMsg, m.keys.DarkMode):
		m.darkMode = !m.darkMode
		if err := m.ctx.Gateway.SetDarkMode(m.darkMode); err != nil {
			m.statusMsg = "Failed to save dark mode setting"
		}
	}

	return m, nil
}

func (m Model) toggleTimer() (tea.Model, tea.Cmd) {
	goal := m.selectedGoal()
	if goal == nil {
		return m, nil
	}

	if !m.ctx.Tracker.Running(goal.ID) {
		m.ctx.Tracker.Start(goal.ID)
		m.ctx.SaveTracker()
		m.statusMsg = fmt.Sprintf("Timer started for %s", goal.Name)
		return m, tick()
	}

	startMs, endMs, ok := m.ctx.Tracker.Stop(goal.ID)
	m.ctx.SaveTracker()
	if !ok {
		m.statusMsg = fmt.Sprintf("Timer stopped for %s (no time recorded)", goal.Name)
		return m, nil
	}

	_, entry := m.ctx.Docs.AddTimerEntry(goal.ID, startMs, endMs)
	m.refreshGoals()
	if entry != nil {
		m.statusMsg = fmt.Sprintf("Logged %s h on %s", calc.FormatHours(entry.Hours), goal.Name)
	}
	return m, nil
}

func (m Model) updateLogTime(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = stateGoals
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		// Invalid input is dropped without an error message.
		_, entry := m.ctx.Docs.AddTime(m.editingGoalID, m.logForm.Hours)
		m.refreshGoals()
		if entry != nil {
			m.statusMsg = fmt.Sprintf("Logged %s h", calc.FormatHours(entry.Hours))
		}
		m.state = stateGoals
	case huh.StateAborted:
		m.state = stateGoals
	}
	return m, cmd
}

func (m Model) updateEditGoal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = stateGoals
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.goalForm.Name != "" {
			m.ctx.Docs.RenameGoal(m.editingGoalID, m.goalForm.Name)
		}
		if m.goalForm.Emoji != "" {
			m.ctx.Docs.SetEmoji(m.editingGoalID, m.goalForm.Emoji)
		}
		m.ctx.Docs.SetMilestones(m.editingGoalID, splitMilestones(m.goalForm.Milestones))
		m.refreshGoals()
		m.statusMsg = "Goal saved"
		m.state = stateGoals
	case huh.StateAborted:
		m.state = stateGoals
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "e", "E":
		path, err := m.exportNow()
		if err != nil {
			m.statusMsg = fmt.Sprintf("Export failed: %v", err)
			m.state = stateGoals
			return m, nil
		}
		m.deleteGoalNow()
		m.statusMsg = fmt.Sprintf("Exported to %s, deleted %s", path, m.deletingGoal.Name)
	case "y", "Y":
		m.deleteGoalNow()
		m.statusMsg = fmt.Sprintf("Deleted %s", m.deletingGoal.Name)
	case "n", "N", "esc", "q":
		m.state = stateGoals
	}
	return m, nil
}

// exportNow writes an export of the current document into the export
// directory, backing the "export now & proceed" choice.
func (m Model) exportNow() (string, error) {
	doc := m.ctx.Docs.Document()
	return m.ctx.Gateway.Export(doc.Goals, doc, m.ctx.ExportDir)
}

func (m *Model) deleteGoalNow() {
	m.ctx.Tracker.DropGoal(m.deletingGoal.ID)
	m.ctx.SaveTracker()
	m.ctx.Docs.DeleteGoal(m.deletingGoal.ID)
	m.refreshGoals()
	m.state = stateGoals
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "e", "E":
		path, err := m.exportNow()
		if err != nil {
			m.statusMsg = fmt.Sprintf("Export failed: %v", err)
			m.state = stateGoals
			return m, nil
		}
		m.resetNow()
		m.statusMsg = fmt.Sprintf("Exported to %s, all data has been reset", path)
	case "y", "Y":
		m.resetNow()
		m.statusMsg = "All data has been reset"
	case "n", "N", "esc", "q":
		m.state = stateGoals
	}
	return m, nil
}

func (m *Model) resetNow() {
	m.ctx.Tracker.Reset()
	m.ctx.SaveTracker()
	m.ctx.Docs.Reset()
	m.refreshGoals()
	m.state = stateGoals
}
