package validation

import (
	"testing"
	"time"

	"github.com/goaltrack/goaltrack/internal/models"
)

func cleanDocument() models.Document {
	doc := models.NewDocument(time.UnixMilli(1700000000000))
	doc.Goals = []models.Goal{
		{
			ID:         1,
			Name:       "Reading",
			TotalHours: 3,
			Hours:      3,
			Entries: []models.TimeEntry{
				{ID: "entry-1-aa", Hours: 1},
				{ID: "entry-2-bb", Hours: 2},
			},
			Milestones: []float64{10, 25, 50},
		},
		{
			ID:         2,
			Name:       "Running",
			TotalHours: 0,
			Hours:      0,
		},
	}
	return doc
}

func conflictTypes(r Result) map[ConflictType]int {
	counts := make(map[ConflictType]int)
	for _, c := range r.Conflicts {
		counts[c.Type]++
	}
	return counts
}

func TestCheckDocument_Clean(t *testing.T) {
	result := CheckDocument(cleanDocument())
	if result.HasConflicts() {
		t.Errorf("expected clean document, got:\n%s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected report: %q", result.FormatReport())
	}
}

func TestCheckDocument_StaleVersion(t *testing.T) {
	doc := cleanDocument()
	doc.Version = "1.0"

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictStaleVersion] != 1 {
		t.Errorf("expected stale version conflict, got %v", counts)
	}
}

func TestCheckDocument_DuplicateGoalID(t *testing.T) {
	doc := cleanDocument()
	doc.Goals[1].ID = 1

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictDuplicateGoalID] != 1 {
		t.Errorf("expected duplicate goal id conflict, got %v", counts)
	}
}

func TestCheckDocument_DuplicateEntryID(t *testing.T) {
	doc := cleanDocument()
	doc.Goals[0].Entries[1].ID = "entry-1-aa"

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictDuplicateEntryID] != 1 {
		t.Errorf("expected duplicate entry id conflict, got %v", counts)
	}
}

func TestCheckDocument_TotalMismatch(t *testing.T) {
	doc := cleanDocument()
	doc.Goals[0].TotalHours = 99
	doc.Goals[0].Hours = 99

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictTotalMismatch] != 1 {
		t.Errorf("expected total mismatch conflict, got %v", counts)
	}
}

func TestCheckDocument_LegacyHoursMismatch(t *testing.T) {
	doc := cleanDocument()
	doc.Goals[0].Hours = 1

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictLegacyMismatch] != 1 {
		t.Errorf("expected legacy hours mismatch conflict, got %v", counts)
	}
}

func TestCheckDocument_BadEntryHours(t *testing.T) {
	doc := cleanDocument()
	doc.Goals[0].Entries[0].Hours = 0
	doc.Goals[0].TotalHours = 2
	doc.Goals[0].Hours = 2

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictBadEntry] != 1 {
		t.Errorf("expected bad entry conflict, got %v", counts)
	}
}

func TestCheckDocument_Milestones(t *testing.T) {
	doc := cleanDocument()
	doc.Goals[0].Milestones = []float64{50, 10, -5}

	counts := conflictTypes(CheckDocument(doc))
	if counts[ConflictUnsortedMilestone] == 0 {
		t.Errorf("expected unsorted milestone conflict, got %v", counts)
	}
	if counts[ConflictInvalidMilestone] != 1 {
		t.Errorf("expected invalid milestone conflict, got %v", counts)
	}
}

func TestCheckDocument_FloatTolerance(t *testing.T) {
	doc := cleanDocument()
	// Sum of thirds accumulates float error; validation must tolerate it.
	doc.Goals[0].Entries = []models.TimeEntry{
		{ID: "entry-1-aa", Hours: 1.0 / 3.0},
		{ID: "entry-2-bb", Hours: 1.0 / 3.0},
		{ID: "entry-3-cc", Hours: 1.0 / 3.0},
	}
	doc.Goals[0].TotalHours = 1.0/3.0 + 1.0/3.0 + 1.0/3.0
	doc.Goals[0].Hours = doc.Goals[0].TotalHours

	result := CheckDocument(doc)
	if result.HasConflicts() {
		t.Errorf("expected tolerance for float rounding, got:\n%s", result.FormatReport())
	}
}
