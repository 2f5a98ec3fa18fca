package dateutil

import (
	"testing"
	"time"

	"github.com/goaltrack/goaltrack/internal/models"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestStartEndOfDay(t *testing.T) {
	at := date(2023, time.November, 15, 13, 45)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("unexpected start of day: %v", start)
	}
	if start.Day() != 15 {
		t.Errorf("start of day moved to another day: %v", start)
	}

	end := EndOfDay(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("unexpected end of day: %v", end)
	}
	if end.Nanosecond() != int(999*time.Millisecond) {
		t.Errorf("expected millisecond precision end of day, got %d ns", end.Nanosecond())
	}
}

func TestWeekRange(t *testing.T) {
	// 2023-11-15 is a Wednesday.
	start, end := WeekRange(date(2023, time.November, 15, 12, 0))

	if FormatDate(start) != "2023-11-13" {
		t.Errorf("expected week to start Monday 2023-11-13, got %s", FormatDate(start))
	}
	if FormatDate(end) != "2023-11-19" {
		t.Errorf("expected week to end Sunday 2023-11-19, got %s", FormatDate(end))
	}
}

func TestWeekRange_Sunday(t *testing.T) {
	// Sundays belong to the week that started the previous Monday.
	start, end := WeekRange(date(2023, time.November, 19, 8, 0))

	if FormatDate(start) != "2023-11-13" {
		t.Errorf("expected week start 2023-11-13, got %s", FormatDate(start))
	}
	if FormatDate(end) != "2023-11-19" {
		t.Errorf("expected week end 2023-11-19, got %s", FormatDate(end))
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(date(2023, time.February, 10, 0, 0))

	if FormatDate(start) != "2023-02-01" {
		t.Errorf("expected month start 2023-02-01, got %s", FormatDate(start))
	}
	if FormatDate(end) != "2023-02-28" {
		t.Errorf("expected month end 2023-02-28, got %s", FormatDate(end))
	}
}

func TestEntriesInRange(t *testing.T) {
	day := date(2023, time.November, 15, 0, 0)
	endOfDay := EndOfDay(day)

	entries := []models.TimeEntry{
		{ID: "before", Timestamp: StartOfDay(day).UnixMilli() - 1},
		{ID: "at-start", Timestamp: StartOfDay(day).UnixMilli()},
		{ID: "midday", Timestamp: day.Add(12 * time.Hour).UnixMilli()},
		{ID: "at-end", Timestamp: endOfDay.UnixMilli()},
		{ID: "past-end", Timestamp: endOfDay.UnixMilli() + 1},
	}

	got := EntriesInRange(entries, day, day)
	want := []string{"at-start", "midday", "at-end"}

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("expected entry %s at index %d, got %s", id, i, got[i].ID)
		}
	}
}

func TestEntriesInRange_Empty(t *testing.T) {
	day := date(2023, time.November, 15, 0, 0)
	got := EntriesInRange(nil, day, day)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestGroupEntriesByDate(t *testing.T) {
	entries := []models.TimeEntry{
		{ID: "a", Date: "2023-11-15"},
		{ID: "b", Date: "2023-11-14"},
		{ID: "c", Date: "2023-11-15"},
		{ID: "d", Timestamp: time.Date(2023, time.November, 13, 10, 0, 0, 0, time.Local).UnixMilli()},
	}

	grouped, dates := GroupEntriesByDate(entries)

	wantDates := []string{"2023-11-13", "2023-11-14", "2023-11-15"}
	if len(dates) != len(wantDates) {
		t.Fatalf("expected dates %v, got %v", wantDates, dates)
	}
	for i := range wantDates {
		if dates[i] != wantDates[i] {
			t.Fatalf("expected dates %v, got %v", wantDates, dates)
		}
	}

	if len(grouped["2023-11-15"]) != 2 {
		t.Errorf("expected 2 entries on 2023-11-15, got %d", len(grouped["2023-11-15"]))
	}
	if len(grouped["2023-11-13"]) != 1 {
		t.Errorf("expected fallback to timestamp date, got %v", grouped)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-11-15", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if FormatDate(got) != "2023-11-15" {
		t.Errorf("round trip mismatch: %s", FormatDate(got))
	}

	if _, err := ParseDate("15/11/2023", time.UTC); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("expected system zone for empty name, got %v (%v)", loc, err)
	}

	loc, err = LoadLocation("Local")
	if err != nil || loc != time.Local {
		t.Errorf("expected system zone for Local, got %v (%v)", loc, err)
	}

	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown zone")
	}
}
