package timers

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/cli"
)

type StartCmd struct {
	Goal string `arg:"" help:"Goal ID or exact name."`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if ctx.Tracker.Running(goal.ID) {
		fmt.Printf("Timer already running for %s (%s elapsed)\n",
			goal.Name, calc.FormatElapsed(ctx.Tracker.Elapsed(goal.ID)))
		return nil
	}

	ctx.Tracker.Start(goal.ID)
	ctx.SaveTracker()
	fmt.Printf("Started timer for %s %s\n", goal.Emoji, goal.Name)
	return nil
}

type StopCmd struct {
	Goal string `arg:"" help:"Goal ID or exact name."`
}

func (c *StopCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	wasRunning := ctx.Tracker.Running(goal.ID)
	startMs, endMs, ok := ctx.Tracker.Stop(goal.ID)
	ctx.SaveTracker()

	if !wasRunning {
		fmt.Printf("No timer running for %s\n", goal.Name)
		return nil
	}
	if !ok {
		// Session measured no positive duration, nothing to record.
		fmt.Printf("Stopped timer for %s (no time recorded)\n", goal.Name)
		return nil
	}

	doc, entry := ctx.Docs.AddTimerEntry(goal.ID, startMs, endMs)
	if entry == nil {
		fmt.Printf("Stopped timer for %s (no time recorded)\n", goal.Name)
		return nil
	}

	updated := doc.FindGoal(goal.ID)
	fmt.Printf("Stopped timer for %s: %s h logged (total: %s h)\n",
		goal.Name, calc.FormatHours(entry.Hours), calc.FormatHours(updated.TotalHours))
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	active := ctx.Tracker.ActiveGoals()
	if len(active) == 0 {
		fmt.Println("No timers running.")
		return nil
	}

	doc := ctx.Docs.Document()
	for _, id := range active {
		name := fmt.Sprintf("goal %d", id)
		if g := doc.FindGoal(id); g != nil {
			name = fmt.Sprintf("%s %s", g.Emoji, g.Name)
		}
		fmt.Printf("  %s  %s\n", calc.FormatElapsed(ctx.Tracker.Elapsed(id)), name)
	}
	return nil
}
