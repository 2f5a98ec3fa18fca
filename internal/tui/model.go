package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

type sessionState int

const (
	stateGoals sessionState = iota
	stateLogTime
	stateEditGoal
	stateConfirmDelete
	stateConfirmReset
)

// GoalFormModel backs the goal editing form.
type GoalFormModel struct {
	Name       string
	Emoji      string
	Milestones string
}

// LogFormModel backs the manual hour entry form.
type LogFormModel struct {
	Hours string
}

type Model struct {
	ctx      *cli.Context
	state    sessionState
	keys     KeyMap
	help     help.Model
	goals    []models.Goal
	cursor   int
	form     *huh.Form
	goalForm *GoalFormModel
	logForm  *LogFormModel

	editingGoalID int
	deletingGoal  models.Goal
	statusMsg     string
	darkMode      bool
	quitting      bool
	width         int
	height        int
}

func NewModel(ctx *cli.Context) Model {
	m := Model{
		ctx:      ctx,
		state:    stateGoals,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		darkMode: ctx.Gateway.DarkMode(),
	}
	m.refreshGoals()
	return m
}

func (m *Model) refreshGoals() {
	doc := m.ctx.Docs.Document()
	m.goals = doc.Goals
	if m.cursor >= len(m.goals) {
		m.cursor = len(m.goals) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selectedGoal() *models.Goal {
	if m.cursor < 0 || m.cursor >= len(m.goals) {
		return nil
	}
	return &m.goals[m.cursor]
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	// The clock only runs while a timer is active.
	if m.ctx.Tracker.ActiveCount() > 0 {
		return tick()
	}
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Timer, m.keys.Log, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Timer, m.keys.Log, m.keys.Add, m.keys.Edit, m.keys.Delete},
		{m.keys.Reset, m.keys.DarkMode, m.keys.Help, m.keys.Quit},
	}
}

func newGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&fm.Name),
		huh.NewInput().Title("Emoji").Value(&fm.Emoji),
		huh.NewInput().
			Title("Milestones").
			Description("Comma-separated hour thresholds").
			Placeholder(joinMilestones(constants.DefaultMilestones)).
			Value(&fm.Milestones),
	))
}

func newLogForm(fm *LogFormModel, goalName string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Hours for " + goalName).
			Placeholder("1.5").
			Value(&fm.Hours),
	))
}

func splitMilestones(raw string) []string {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func joinMilestones(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = calc.FormatHours(v)
	}
	return strings.Join(parts, ", ")
}
