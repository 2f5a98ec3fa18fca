// Package dateutil holds the calendar math behind the daily, weekly, and
// monthly views.
package dateutil

import (
	"fmt"
	"sort"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// LoadLocation resolves an IANA timezone name. "Local" or empty means the
// system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// StartOfDay returns 00:00:00.000 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// WeekRange returns the Monday 00:00:00 and Sunday 23:59:59.999 of the week
// containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	return monday, EndOfDay(monday.AddDate(0, 0, 6))
}

// MonthRange returns the first and last instants of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, EndOfDay(last)
}

// EntriesInRange filters entries whose creation timestamp falls within
// [StartOfDay(start), EndOfDay(end)]. An entry 1ms past the end of the range
// is excluded.
func EntriesInRange(entries []models.TimeEntry, start, end time.Time) []models.TimeEntry {
	lo := StartOfDay(start).UnixMilli()
	hi := EndOfDay(end).UnixMilli()
	out := []models.TimeEntry{}
	for _, e := range entries {
		if e.Timestamp >= lo && e.Timestamp <= hi {
			out = append(out, e)
		}
	}
	return out
}

// GroupEntriesByDate buckets entries under their YYYY-MM-DD date and returns
// the dates in ascending order alongside the groups.
func GroupEntriesByDate(entries []models.TimeEntry) (map[string][]models.TimeEntry, []string) {
	grouped := make(map[string][]models.TimeEntry)
	for _, e := range entries {
		date := e.Date
		if date == "" {
			date = FormatDate(time.UnixMilli(e.Timestamp))
		}
		grouped[date] = append(grouped[date], e)
	}
	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return grouped, dates
}
