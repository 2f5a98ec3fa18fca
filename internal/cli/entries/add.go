package entries

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/cli"
)

type AddCmd struct {
	Goal  string `arg:"" help:"Goal ID or exact name."`
	Hours string `arg:"" help:"Hours to log, e.g. 1.5."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	// Invalid hour input is ignored without an error, matching the
	// editor behavior where a bad value simply does nothing.
	doc, entry := ctx.Docs.AddTime(goal.ID, c.Hours)
	if entry == nil {
		return nil
	}

	updated := doc.FindGoal(goal.ID)
	fmt.Printf("Logged %s h on %s (total: %s h)\n",
		calc.FormatHours(entry.Hours), goal.Name, calc.FormatHours(updated.TotalHours))
	return nil
}
