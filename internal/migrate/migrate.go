// Package migrate normalizes arbitrary persisted or imported JSON into the
// current document schema. Migration is idempotent: a document already
// carrying the current version and schema passes through unchanged, so
// Migrate(Migrate(x)) == Migrate(x) for every accepted input.
package migrate

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/models"
)

// Validate reports whether raw parsed JSON is an acceptable document: either
// a versioned object with an array-typed goals field, or a bare array (the
// pre-versioned format). Validate never fails; anything else is simply
// rejected.
func Validate(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case []any:
		return true
	case map[string]any:
		if !truthy(t["version"]) || !truthy(t["schema"]) {
			return false
		}
		_, ok := t["goals"].([]any)
		return ok
	default:
		return false
	}
}

// ValidateBytes parses raw bytes and validates the result. Malformed JSON is
// rejected, never surfaced as an error.
func ValidateBytes(raw []byte) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return Validate(v)
}

// Migrate normalizes parsed JSON to the current (version, schema) pair.
//
//   - Current documents are returned unchanged (fast path).
//   - A bare array is treated as the legacy goal list.
//   - An object with a goals array uses those goals; anything else falls back
//     to the built-in default goal set.
//   - A goal carrying legacy hours > 0 with no entries gets exactly one
//     backfilled manual entry dated now for the full value.
//   - Totals are recomputed from entries and milestones are normalized
//     (coerced, invalid dropped, deduped, sorted).
//   - createdAt is preserved when present, lastModified is stamped now, and
//     missing settings get defaults.
func Migrate(v any, now time.Time) models.Document {
	if doc, ok := currentDocument(v); ok {
		return doc
	}

	var rawGoals []any
	var createdAt int64
	var settings *models.Settings

	switch t := v.(type) {
	case []any:
		rawGoals = t
	case map[string]any:
		if g, ok := t["goals"].([]any); ok {
			rawGoals = g
		} else {
			rawGoals = defaultGoalSet()
		}
		createdAt = asInt64(t["createdAt"])
		settings = asSettings(t["settings"])
	default:
		rawGoals = defaultGoalSet()
	}

	goals := make([]models.Goal, 0, len(rawGoals))
	for _, rg := range rawGoals {
		goals = append(goals, migrateGoal(rg, now))
	}

	if createdAt == 0 {
		createdAt = now.UnixMilli()
	}
	if settings == nil {
		s := models.DefaultSettings()
		settings = &s
	}

	return models.Document{
		Version:      constants.DataVersion,
		Schema:       constants.DataSchema,
		CreatedAt:    createdAt,
		LastModified: now.UnixMilli(),
		Goals:        goals,
		Settings:     *settings,
	}
}

// Ensure turns raw stored bytes into a usable document no matter what. Empty
// or malformed input falls back to a fresh document built from the default
// goal set; the caller is never left without a document.
func Ensure(raw []byte, now time.Time) models.Document {
	if len(raw) == 0 {
		return Migrate(defaultGoalSet(), now)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("stored document is not valid JSON, rebuilding from defaults", "error", err)
		return Migrate(defaultGoalSet(), now)
	}
	if v == nil {
		return Migrate(defaultGoalSet(), now)
	}
	return Migrate(v, now)
}

// currentDocument attempts the no-op fast path: a document that already
// carries the current version and schema decodes directly and is returned
// as-is.
func currentDocument(v any) (models.Document, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return models.Document{}, false
	}
	if asString(m["version"]) != constants.DataVersion || asString(m["schema"]) != constants.DataSchema {
		return models.Document{}, false
	}
	if _, ok := m["goals"].([]any); !ok {
		return models.Document{}, false
	}
	data, err := json.Marshal(m)
	if err != nil {
		return models.Document{}, false
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, false
	}
	if doc.Goals == nil {
		doc.Goals = []models.Goal{}
	}
	return doc, true
}

func migrateGoal(v any, now time.Time) models.Goal {
	m, _ := v.(map[string]any)

	goal := models.Goal{
		ID:    int(asInt64(m["id"])),
		Name:  asString(m["name"]),
		Emoji: asString(m["emoji"]),
		Color: asString(m["color"]),
	}

	legacyHours := asFloat(m["hours"])
	entries := asEntries(m["entries"])

	// Legacy bridge: a goal tracked before per-entry recording carries a
	// bare hour total. Synthesize one manual entry dated now for the full
	// value so totals stay derivable from entries. The original recording
	// time is unknown; the migration time is an accepted approximation.
	if legacyHours > 0 && len(entries) == 0 {
		e := models.NewTimeEntry(legacyHours, constants.SourceManual, nil, nil, now)
		entries = append(entries, e)
	}

	total := calc.TotalHours(entries)
	if total == 0 {
		total = legacyHours
	}
	goal.Entries = entries
	goal.TotalHours = total
	goal.Hours = total
	goal.Milestones = asMilestones(m["milestones"])
	return goal
}

func defaultGoalSet() []any {
	return []any{}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return t
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	return int64(asFloat(v))
}

func asSettings(v any) *models.Settings {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	s := models.DefaultSettings()
	if tz := asString(m["timezone"]); tz != "" {
		s.Timezone = tz
	}
	if df := asString(m["dateFormat"]); df != "" {
		s.DateFormat = df
	}
	if dv := asString(m["defaultView"]); dv != "" {
		s.DefaultView = dv
	}
	return &s
}

func asEntries(v any) []models.TimeEntry {
	list, ok := v.([]any)
	if !ok {
		return []models.TimeEntry{}
	}
	entries := make([]models.TimeEntry, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		e := models.TimeEntry{
			ID:        asString(m["id"]),
			Timestamp: asInt64(m["timestamp"]),
			Date:      asString(m["date"]),
			Hours:     asFloat(m["hours"]),
			Source:    constants.EntrySource(asString(m["source"])),
			Notes:     asString(m["notes"]),
		}
		if e.Source == "" {
			e.Source = constants.SourceManual
		}
		if st, ok := m["startTime"].(float64); ok {
			v := int64(st)
			e.StartTime = &v
		}
		if et, ok := m["endTime"].(float64); ok {
			v := int64(et)
			e.EndTime = &v
		}
		entries = append(entries, e)
	}
	return entries
}

// asMilestones normalizes milestone input the same way the milestone editor
// does on save: coerce to numbers, drop invalid and non-positive values,
// dedupe, sort ascending. Migration and editor share one normalization point.
func asMilestones(v any) []float64 {
	list, ok := v.([]any)
	if !ok {
		return []float64{}
	}
	vals := make([]float64, 0, len(list))
	for _, item := range list {
		switch t := item.(type) {
		case float64:
			vals = append(vals, t)
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				vals = append(vals, f)
			}
		}
	}
	return calc.NormalizeMilestoneValues(vals)
}
