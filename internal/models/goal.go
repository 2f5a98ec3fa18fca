package models

import "github.com/goaltrack/goaltrack/internal/constants"

// Goal is a user-defined trackable activity. TotalHours is the authoritative
// derived total; Hours mirrors it for consumers of the pre-entry format.
type Goal struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Emoji      string      `json:"emoji"`
	Color      string      `json:"color"`
	Hours      float64     `json:"hours"`
	TotalHours float64     `json:"totalHours"`
	Entries    []TimeEntry `json:"entries"`
	Milestones []float64   `json:"milestones"`
}

// NextGoalID returns max(existing ids)+1. Ids are unique but need not be
// contiguous.
func NextGoalID(goals []Goal) int {
	maxID := 0
	for _, g := range goals {
		if g.ID > maxID {
			maxID = g.ID
		}
	}
	return maxID + 1
}

// PaletteColor assigns a goal color from the fixed palette by id.
func PaletteColor(id int) string {
	idx := (id - 1) % len(constants.ColorPalette)
	if idx < 0 {
		idx += len(constants.ColorPalette)
	}
	return constants.ColorPalette[idx]
}

// NewGoal creates a goal with the default name and emoji, the next
// sequential id, and a palette color.
func NewGoal(existing []Goal) Goal {
	id := NextGoalID(existing)
	return Goal{
		ID:         id,
		Name:       constants.DefaultGoalName,
		Emoji:      constants.DefaultGoalEmoji,
		Color:      PaletteColor(id),
		Entries:    []TimeEntry{},
		Milestones: []float64{},
	}
}
