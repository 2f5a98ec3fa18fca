// Package docstore is the single authoritative owner of the in-memory
// document. Every mutation goes through an explicit command that validates
// its input, recomputes derived totals, and returns the new document
// snapshot. Persistence is a subscriber to state-change events, not inlined
// in the commands.
package docstore

import (
	"encoding/json"
	"time"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/migrate"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/storage"
)

// Subscriber receives the new document snapshot after every committed
// mutation.
type Subscriber func(models.Document)

// Service owns the document. All access happens on the caller's goroutine;
// like the storage providers it is not safe for concurrent use by multiple
// goroutines without external coordination.
type Service struct {
	gateway     *storage.Gateway
	doc         models.Document
	now         func() time.Time
	subscribers []Subscriber
}

// LoadReport describes what happened while reading stored state.
type LoadReport struct {
	// ValidationFailed is set when stored bytes existed but were rejected;
	// the service fell back to a fresh document.
	ValidationFailed bool
	// RecoveryBackupPath is the best-effort dump of the rejected bytes,
	// empty when none was written.
	RecoveryBackupPath string
}

// Load reads, validates, and migrates stored state into a ready service.
// It never fails to produce a usable document: rejected or missing state
// falls back to the built-in defaults, with a recovery backup of rejected
// bytes written to recoveryDir first.
func Load(gw *storage.Gateway, recoveryDir string) (*Service, LoadReport) {
	return LoadWithClock(gw, recoveryDir, time.Now)
}

// LoadWithClock is Load with an injectable clock for tests.
func LoadWithClock(gw *storage.Gateway, recoveryDir string, now func() time.Time) (*Service, LoadReport) {
	s := &Service{gateway: gw, now: now}
	report := LoadReport{}

	raw := gw.Load()
	if raw != nil && !migrate.ValidateBytes(raw) {
		logger.Warn("stored document failed validation, starting from defaults")
		report.ValidationFailed = true
		if path, err := gw.WriteRecoveryBackup(raw, recoveryDir); err != nil {
			logger.Error("could not write recovery backup", "error", err)
		} else {
			report.RecoveryBackupPath = path
		}
		raw = nil
	}
	s.doc = migrate.Ensure(raw, now())

	// Persistence is the first subscriber: every committed snapshot is
	// written through the gateway synchronously.
	s.Subscribe(func(doc models.Document) {
		if err := gw.Write(doc); err != nil {
			logger.Error("failed to persist document", "error", err)
		}
	})

	// Persist the normalized form so the next load takes the fast path.
	s.commit(s.doc)
	return s, report
}

// Subscribe registers a state-change subscriber.
func (s *Service) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// Document returns a snapshot of the current document.
func (s *Service) Document() models.Document {
	return s.doc.Clone()
}

func (s *Service) commit(doc models.Document) models.Document {
	doc.Version = constants.DataVersion
	doc.Schema = constants.DataSchema
	doc.LastModified = s.now().UnixMilli()
	if doc.CreatedAt == 0 {
		doc.CreatedAt = doc.LastModified
	}
	s.doc = doc
	for _, fn := range s.subscribers {
		fn(doc.Clone())
	}
	return s.doc.Clone()
}

// AddGoal appends a new goal with the default name, the next sequential id,
// and a palette color.
func (s *Service) AddGoal() (models.Document, models.Goal) {
	doc := s.doc.Clone()
	goal := models.NewGoal(doc.Goals)
	doc.Goals = append(doc.Goals, goal)
	return s.commit(doc), goal
}

// RenameGoal sets a goal's display name.
func (s *Service) RenameGoal(goalID int, name string) (models.Document, bool) {
	doc := s.doc.Clone()
	g := doc.FindGoal(goalID)
	if g == nil {
		return s.Document(), false
	}
	g.Name = name
	return s.commit(doc), true
}

// SetEmoji sets a goal's emoji.
func (s *Service) SetEmoji(goalID int, emoji string) (models.Document, bool) {
	doc := s.doc.Clone()
	g := doc.FindGoal(goalID)
	if g == nil {
		return s.Document(), false
	}
	g.Emoji = emoji
	return s.commit(doc), true
}

// DeleteGoal removes a goal and cascades to all of its entries. Other goals
// are untouched. The destructive-action confirmation happens at the UI
// boundary before this command runs.
func (s *Service) DeleteGoal(goalID int) (models.Document, bool) {
	doc := s.doc.Clone()
	found := false
	goals := doc.Goals[:0]
	for _, g := range doc.Goals {
		if g.ID == goalID {
			found = true
			continue
		}
		goals = append(goals, g)
	}
	if !found {
		return s.Document(), false
	}
	doc.Goals = goals
	return s.commit(doc), true
}

// AddTime records manual time against a goal from raw user input. Values
// that do not parse to a positive number are a deliberate silent no-op: no
// entry, no error, totals unchanged.
func (s *Service) AddTime(goalID int, hoursInput string) (models.Document, *models.TimeEntry) {
	hours, ok := calc.ParseHours(hoursInput)
	if !ok || hours <= 0 {
		return s.Document(), nil
	}
	return s.addEntry(goalID, hours, constants.SourceManual, nil, nil)
}

// AddTimerEntry records a stopped timer session. The tracker has already
// rejected non-positive durations; hours derive from the session bounds.
func (s *Service) AddTimerEntry(goalID int, startMs, endMs int64) (models.Document, *models.TimeEntry) {
	duration := endMs - startMs
	if duration <= 0 {
		return s.Document(), nil
	}
	hours := float64(duration) / float64(time.Hour/time.Millisecond)
	return s.addEntry(goalID, hours, constants.SourceTimer, &startMs, &endMs)
}

func (s *Service) addEntry(goalID int, hours float64, source constants.EntrySource, startMs, endMs *int64) (models.Document, *models.TimeEntry) {
	doc := s.doc.Clone()
	g := doc.FindGoal(goalID)
	if g == nil {
		return s.Document(), nil
	}
	entry := models.NewTimeEntry(hours, source, startMs, endMs, s.now())
	g.Entries = append(g.Entries, entry)
	total := calc.TotalHours(g.Entries)
	g.TotalHours = total
	g.Hours = total
	return s.commit(doc), &entry
}

// DeleteEntry removes a single entry from a goal and recomputes its totals.
func (s *Service) DeleteEntry(goalID int, entryID string) (models.Document, bool) {
	doc := s.doc.Clone()
	g := doc.FindGoal(goalID)
	if g == nil {
		return s.Document(), false
	}
	found := false
	entries := g.Entries[:0]
	for _, e := range g.Entries {
		if e.ID == entryID {
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		return s.Document(), false
	}
	g.Entries = entries
	total := calc.TotalHours(g.Entries)
	g.TotalHours = total
	g.Hours = total
	return s.commit(doc), true
}

// SetMilestones replaces a goal's milestones with the normalized form of the
// editor input: coerced, invalid and non-positive dropped, deduped, sorted
// ascending.
func (s *Service) SetMilestones(goalID int, raw []string) (models.Document, bool) {
	doc := s.doc.Clone()
	g := doc.FindGoal(goalID)
	if g == nil {
		return s.Document(), false
	}
	g.Milestones = calc.NormalizeMilestones(raw)
	return s.commit(doc), true
}

// Import replaces the whole document with validated, migrated file content.
func (s *Service) Import(raw []byte) (models.Document, error) {
	doc, err := s.gateway.Import(raw)
	if err != nil {
		return s.Document(), err
	}
	return s.commit(doc), nil
}

// Reset discards everything and starts from a blank document.
func (s *Service) Reset() models.Document {
	return s.commit(models.NewDocument(s.now()))
}

// TotalHours sums the authoritative totals of all goals.
func (s *Service) TotalHours() float64 {
	var sum float64
	for _, g := range s.doc.Goals {
		sum += g.TotalHours
	}
	return sum
}

// ExportJSON renders the current document in the export file shape.
func (s *Service) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.doc, "", "  ")
}
