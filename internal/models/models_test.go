package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
)

func TestNextGoalID(t *testing.T) {
	tests := []struct {
		name  string
		goals []Goal
		want  int
	}{
		{"empty", nil, 1},
		{"sequential", []Goal{{ID: 1}, {ID: 2}}, 3},
		{"gap after delete", []Goal{{ID: 1}, {ID: 5}}, 6},
		{"unordered", []Goal{{ID: 7}, {ID: 2}}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextGoalID(tt.goals); got != tt.want {
				t.Errorf("NextGoalID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaletteColorCycles(t *testing.T) {
	n := len(constants.ColorPalette)
	if PaletteColor(1) != constants.ColorPalette[0] {
		t.Errorf("PaletteColor(1) = %q, want first palette color", PaletteColor(1))
	}
	if PaletteColor(n+1) != constants.ColorPalette[0] {
		t.Errorf("PaletteColor(%d) should wrap to the first palette color", n+1)
	}
	if PaletteColor(2) != constants.ColorPalette[1] {
		t.Errorf("PaletteColor(2) = %q, want second palette color", PaletteColor(2))
	}
}

func TestNewGoalDefaults(t *testing.T) {
	g := NewGoal([]Goal{{ID: 3}})
	if g.ID != 4 {
		t.Errorf("ID = %d, want 4", g.ID)
	}
	if g.Name != constants.DefaultGoalName {
		t.Errorf("Name = %q, want default", g.Name)
	}
	if g.Entries == nil || g.Milestones == nil {
		t.Error("Entries and Milestones should be non-nil empty slices")
	}
}

func TestNewTimeEntry(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	e := NewTimeEntry(2.5, constants.SourceManual, nil, nil, now)
	if !strings.HasPrefix(e.ID, "entry-1700000000000-") {
		t.Errorf("ID = %q, want entry-<timestamp>- prefix", e.ID)
	}
	if e.Timestamp != now.UnixMilli() {
		t.Errorf("Timestamp = %d, want %d", e.Timestamp, now.UnixMilli())
	}
	if e.Date != now.Format(constants.DateFormat) {
		t.Errorf("Date = %q, want %q", e.Date, now.Format(constants.DateFormat))
	}
	if e.Hours != 2.5 || e.Source != constants.SourceManual {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestEntryIDsUnique(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewEntryID(now)
		if seen[id] {
			t.Fatalf("duplicate entry id %q", id)
		}
		seen[id] = true
	}
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument(time.UnixMilli(1700000000000))
	doc.Goals = []Goal{{
		ID:         1,
		Name:       "Guitar",
		Entries:    []TimeEntry{{ID: "entry-1", Hours: 1}},
		Milestones: []float64{10, 50},
	}}

	clone := doc.Clone()
	clone.Goals[0].Name = "Changed"
	clone.Goals[0].Entries[0].Hours = 99
	clone.Goals[0].Milestones[0] = 99

	if doc.Goals[0].Name != "Guitar" {
		t.Error("clone shares goal slice with original")
	}
	if doc.Goals[0].Entries[0].Hours != 1 {
		t.Error("clone shares entry slice with original")
	}
	if doc.Goals[0].Milestones[0] != 10 {
		t.Error("clone shares milestone slice with original")
	}
}

func TestFindGoal(t *testing.T) {
	doc := Document{Goals: []Goal{{ID: 1}, {ID: 2}}}
	if g := doc.FindGoal(2); g == nil || g.ID != 2 {
		t.Errorf("FindGoal(2) = %v, want goal 2", g)
	}
	if g := doc.FindGoal(9); g != nil {
		t.Errorf("FindGoal(9) = %v, want nil", g)
	}
}
