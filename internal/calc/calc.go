// Package calc derives aggregate values from goal entries. Everything here
// is a pure function: totals are recomputed after each mutation and
// milestone-reached state is recomputed on render, never stored.
package calc

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/goaltrack/goaltrack/internal/models"
)

// TotalHours sums the hours of all entries. Missing or non-finite hour
// values count as zero; a nil slice totals zero.
func TotalHours(entries []models.TimeEntry) float64 {
	var sum float64
	for _, e := range entries {
		if math.IsNaN(e.Hours) || math.IsInf(e.Hours, 0) {
			continue
		}
		sum += e.Hours
	}
	return sum
}

// MilestoneReached reports whether the current total has crossed a milestone
// threshold.
func MilestoneReached(currentTotal, milestone float64) bool {
	return milestone > 0 && currentTotal >= milestone
}

// ParseHours coerces user hour input to a number. It returns ok=false for
// anything non-numeric or non-finite; callers treat that the same as a
// non-positive value.
func ParseHours(input string) (float64, bool) {
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NormalizeMilestones coerces raw milestone input to numbers, drops
// non-numeric and non-positive values, dedupes, and sorts ascending.
func NormalizeMilestones(raw []string) []float64 {
	seen := make(map[float64]bool)
	out := []float64{}
	for _, r := range raw {
		v, ok := ParseHours(r)
		if !ok || v <= 0 {
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// NormalizeMilestoneValues is NormalizeMilestones for already-numeric input,
// used when re-normalizing persisted documents.
func NormalizeMilestoneValues(raw []float64) []float64 {
	seen := make(map[float64]bool)
	out := []float64{}
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// FormatElapsed renders a millisecond duration as H:MM:SS, or M:SS under an
// hour.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatHours renders an hour total for display, trimming to two decimals.
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}
