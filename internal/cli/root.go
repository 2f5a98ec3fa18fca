package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goaltrack/goaltrack/internal/backup"
	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/dateutil"
	"github.com/goaltrack/goaltrack/internal/docstore"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/storage"
	"github.com/goaltrack/goaltrack/internal/timer"
)

// Context carries the shared application state into every command.
type Context struct {
	Gateway *storage.Gateway
	Docs    *docstore.Service
	Tracker *timer.Tracker
	Confirm Confirmer

	// ExportDir is where export and recovery files land; defaults to the
	// working directory.
	ExportDir string
}

// PerformDailyBackup creates one automatic backup per day, keyed on the
// stored marker date, and silently tolerates failure.
func (c *Context) PerformDailyBackup() {
	today := time.Now().Format("2006-01-02")
	if c.Gateway.LastBackupDate() == today {
		return
	}
	mgr := backup.NewManager(c.Gateway.KV().Path())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
	if err := c.Gateway.SetLastBackupDate(today); err != nil {
		logger.Warn("Failed to update backup marker", "error", err)
	}
}

// RestoreTracker loads persisted timer sessions into the in-memory tracker.
func (c *Context) RestoreTracker() {
	c.Tracker.Restore(c.Gateway.ActiveTimers())
}

// SaveTracker persists the in-memory timer sessions so they survive across
// CLI invocations.
func (c *Context) SaveTracker() {
	snapshot, err := c.Tracker.Snapshot()
	if err != nil {
		logger.Warn("Failed to snapshot timer sessions", "error", err)
		return
	}
	if err := c.Gateway.SetActiveTimers(snapshot); err != nil {
		logger.Warn("Failed to persist timer sessions", "error", err)
	}
}

// ConfirmDestructive gates an action behind the configured confirmer. When
// the user picks "Export Now & Proceed" the current document is exported
// before the action is allowed; an export failure blocks the action.
func (c *Context) ConfirmDestructive(message string, requireAck bool) (bool, error) {
	decision, err := c.Confirm.Confirm(message, requireAck)
	if err != nil {
		return false, err
	}
	switch decision {
	case ExportFirst:
		doc := c.Docs.Document()
		path, err := c.Gateway.Export(doc.Goals, doc, c.ExportDir)
		if err != nil {
			return false, fmt.Errorf("export failed, aborting: %w", err)
		}
		fmt.Printf("✓ Exported data to %s\n", path)
		return true, nil
	case Proceed:
		return true, nil
	default:
		return false, nil
	}
}

// ResolveGoal accepts a goal id or an exact name and returns the goal.
func (c *Context) ResolveGoal(ref string) (models.Goal, error) {
	doc := c.Docs.Document()
	if id, err := strconv.Atoi(ref); err == nil {
		for _, g := range doc.Goals {
			if g.ID == id {
				return g, nil
			}
		}
	}
	for _, g := range doc.Goals {
		if g.Name == ref {
			return g, nil
		}
	}
	return models.Goal{}, fmt.Errorf("no goal matching %q", ref)
}

// FormatGoalLine renders one goal summary row for list output.
func FormatGoalLine(g models.Goal) string {
	line := fmt.Sprintf("%3d  %s %-24s %8s h", g.ID, g.Emoji, g.Name, calc.FormatHours(g.TotalHours))
	if len(g.Milestones) > 0 {
		reached := 0
		for _, m := range g.Milestones {
			if calc.MilestoneReached(g.TotalHours, m) {
				reached++
			}
		}
		line += fmt.Sprintf("  [%d/%d milestones]", reached, len(g.Milestones))
	}
	return line
}

// FormatEntryLine renders one entry row for log output.
func FormatEntryLine(e models.TimeEntry) string {
	when := time.UnixMilli(e.Timestamp).Format("15:04")
	return fmt.Sprintf("  %s  %-6s %8s h  %s", when, e.Source, calc.FormatHours(e.Hours), e.ID)
}

// RangeForView returns the filter bounds for a calendar view anchored at t.
func RangeForView(view string, t time.Time) (time.Time, time.Time, error) {
	switch view {
	case "daily":
		return dateutil.StartOfDay(t), dateutil.EndOfDay(t), nil
	case "weekly":
		start, end := dateutil.WeekRange(t)
		return start, end, nil
	case "monthly":
		start, end := dateutil.MonthRange(t)
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid view %q (expected daily, weekly, or monthly)", view)
	}
}
