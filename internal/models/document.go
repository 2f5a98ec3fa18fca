package models

import (
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
)

// Settings holds the document-level preferences persisted alongside goals.
type Settings struct {
	Timezone    string `json:"timezone"`    // IANA name, or "Local" for the system zone
	DateFormat  string `json:"dateFormat"`  // display format, informational
	DefaultView string `json:"defaultView"` // daily|weekly|monthly
}

// DefaultSettings returns the settings stamped onto documents that carry none.
func DefaultSettings() Settings {
	return Settings{
		Timezone:    constants.DefaultTimezone,
		DateFormat:  constants.DefaultDateFormat,
		DefaultView: constants.DefaultView,
	}
}

// Document is the full persisted state: all goals plus metadata and settings.
// It is the unit of persistence, export, and import. After normalization
// Version and Schema always match the current constants, and goal order is
// display order.
type Document struct {
	Version      string   `json:"version"`
	Schema       string   `json:"schema"`
	CreatedAt    int64    `json:"createdAt"`    // ms epoch
	LastModified int64    `json:"lastModified"` // ms epoch
	Goals        []Goal   `json:"goals"`
	Settings     Settings `json:"settings"`
}

// NewDocument builds an empty current-format document timestamped now.
func NewDocument(now time.Time) Document {
	ms := now.UnixMilli()
	return Document{
		Version:      constants.DataVersion,
		Schema:       constants.DataSchema,
		CreatedAt:    ms,
		LastModified: ms,
		Goals:        []Goal{},
		Settings:     DefaultSettings(),
	}
}

// FindGoal returns a pointer into the document's goal slice, or nil.
func (d *Document) FindGoal(id int) *Goal {
	for i := range d.Goals {
		if d.Goals[i].ID == id {
			return &d.Goals[i]
		}
	}
	return nil
}

// Clone deep-copies the document so command snapshots never alias live state.
func (d Document) Clone() Document {
	out := d
	out.Goals = make([]Goal, len(d.Goals))
	for i, g := range d.Goals {
		cg := g
		cg.Entries = make([]TimeEntry, len(g.Entries))
		copy(cg.Entries, g.Entries)
		cg.Milestones = make([]float64, len(g.Milestones))
		copy(cg.Milestones, g.Milestones)
		out.Goals[i] = cg
	}
	return out
}
