package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack/goaltrack/internal/constants"
)

// TimeEntry is one recorded slice of time attributed to a goal. Entries are
// never mutated in place; goals add and delete them only.
type TimeEntry struct {
	ID        string                `json:"id"`
	Timestamp int64                 `json:"timestamp"` // ms epoch, creation time
	Date      string                `json:"date"`      // YYYY-MM-DD, derived from Timestamp
	Hours     float64               `json:"hours"`
	Source    constants.EntrySource `json:"source"`
	StartTime *int64                `json:"startTime"` // ms epoch, timer entries only
	EndTime   *int64                `json:"endTime"`   // ms epoch, timer entries only
	Notes     string                `json:"notes"`
}

// NewEntryID generates a unique entry id from the creation timestamp plus a
// random suffix.
func NewEntryID(t time.Time) string {
	return fmt.Sprintf("entry-%d-%s", t.UnixMilli(), uuid.NewString()[:8])
}

// NewTimeEntry constructs a manual or timer entry dated now. The caller is
// responsible for rejecting non-positive hours; see docstore.AddEntry.
func NewTimeEntry(hours float64, source constants.EntrySource, startTime, endTime *int64, now time.Time) TimeEntry {
	return TimeEntry{
		ID:        NewEntryID(now),
		Timestamp: now.UnixMilli(),
		Date:      now.Format(constants.DateFormat),
		Hours:     hours,
		Source:    source,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     "",
	}
}
