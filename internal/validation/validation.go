// Package validation checks a document against its structural invariants.
// Migration should always produce a clean document; the doctor command runs
// these checks to catch storage written by other tools or older builds.
package validation

import (
	"fmt"
	"math"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

// ConflictType represents the kind of invariant breach found
type ConflictType string

const (
	ConflictDuplicateGoalID   ConflictType = "duplicate_goal_id"
	ConflictDuplicateEntryID  ConflictType = "duplicate_entry_id"
	ConflictTotalMismatch     ConflictType = "total_mismatch"
	ConflictLegacyMismatch    ConflictType = "legacy_hours_mismatch"
	ConflictUnsortedMilestone ConflictType = "unsorted_milestones"
	ConflictInvalidMilestone  ConflictType = "invalid_milestone"
	ConflictStaleVersion      ConflictType = "stale_version"
	ConflictBadEntry          ConflictType = "bad_entry"
)

// Conflict is one detected invariant breach.
type Conflict struct {
	Type        ConflictType
	Description string
	GoalID      int
}

// Result contains all detected conflicts.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}
	report := "Conflicts detected:\n"
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

// CheckDocument verifies the document-level invariants: current version and
// schema, unique goal and entry ids, totals derived from entries, mirrored
// legacy hours, and normalized milestones.
func CheckDocument(doc models.Document) Result {
	result := Result{Conflicts: []Conflict{}}

	if doc.Version != constants.DataVersion || doc.Schema != constants.DataSchema {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictStaleVersion,
			Description: fmt.Sprintf("document version/schema is (%s, %s), expected (%s, %s)", doc.Version, doc.Schema, constants.DataVersion, constants.DataSchema),
		})
	}

	goalIDs := make(map[int]bool)
	entryIDs := make(map[string]bool)
	for _, g := range doc.Goals {
		if goalIDs[g.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateGoalID,
				Description: fmt.Sprintf("duplicate goal id %d", g.ID),
				GoalID:      g.ID,
			})
		}
		goalIDs[g.ID] = true

		for _, e := range g.Entries {
			if e.ID != "" && entryIDs[e.ID] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateEntryID,
					Description: fmt.Sprintf("goal %d has duplicate entry id %q", g.ID, e.ID),
					GoalID:      g.ID,
				})
			}
			entryIDs[e.ID] = true
			if e.Hours <= 0 || math.IsNaN(e.Hours) || math.IsInf(e.Hours, 0) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictBadEntry,
					Description: fmt.Sprintf("goal %d entry %q has non-positive hours", g.ID, e.ID),
					GoalID:      g.ID,
				})
			}
		}

		total := calc.TotalHours(g.Entries)
		if !nearlyEqual(g.TotalHours, total) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictTotalMismatch,
				Description: fmt.Sprintf("goal %d totalHours %v does not match entry sum %v", g.ID, g.TotalHours, total),
				GoalID:      g.ID,
			})
		}
		if !nearlyEqual(g.Hours, g.TotalHours) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictLegacyMismatch,
				Description: fmt.Sprintf("goal %d legacy hours %v does not mirror totalHours %v", g.ID, g.Hours, g.TotalHours),
				GoalID:      g.ID,
			})
		}

		for i, m := range g.Milestones {
			if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidMilestone,
					Description: fmt.Sprintf("goal %d has non-positive milestone %v", g.ID, m),
					GoalID:      g.ID,
				})
			}
			if i > 0 && g.Milestones[i-1] >= m {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnsortedMilestone,
					Description: fmt.Sprintf("goal %d milestones are not strictly ascending at index %d", g.ID, i),
					GoalID:      g.ID,
				})
			}
		}
	}

	return result
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
