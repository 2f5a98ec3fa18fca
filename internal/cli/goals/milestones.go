package goals

import (
	"fmt"
	"strings"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
)

type MilestonesSetCmd struct {
	Goal   string   `arg:"" help:"Goal ID or exact name."`
	Values []string `arg:"" optional:"" help:"Milestone hour thresholds. Invalid and non-positive values are dropped; pass none to clear."`
	Preset bool     `help:"Use the standard milestone ladder instead of explicit values."`
}

func (c *MilestonesSetCmd) Validate() error {
	if c.Preset && len(c.Values) > 0 {
		return fmt.Errorf("--preset cannot be combined with explicit values")
	}
	return nil
}

func (c *MilestonesSetCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	values := c.Values
	if c.Preset {
		values = make([]string, len(constants.DefaultMilestones))
		for i, m := range constants.DefaultMilestones {
			values[i] = calc.FormatHours(m)
		}
	}

	doc, ok := ctx.Docs.SetMilestones(goal.ID, values)
	if !ok {
		return fmt.Errorf("failed to update goal %d", goal.ID)
	}

	updated := *doc.FindGoal(goal.ID)
	if len(updated.Milestones) == 0 {
		fmt.Printf("Cleared milestones for %s\n", updated.Name)
		return nil
	}
	fmt.Printf("Milestones for %s: %s\n", updated.Name, formatMilestones(updated.Milestones))
	return nil
}

type MilestonesShowCmd struct {
	Goal string `arg:"" help:"Goal ID or exact name."`
}

func (c *MilestonesShowCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Milestones) == 0 {
		fmt.Printf("%s has no milestones set.\n", goal.Name)
		return nil
	}

	fmt.Printf("%s %s (%.1f h total)\n", goal.Emoji, goal.Name, goal.TotalHours)
	for _, m := range goal.Milestones {
		marker := " "
		if calc.MilestoneReached(goal.TotalHours, m) {
			marker = "★"
		}
		fmt.Printf("  %s %s h\n", marker, calc.FormatHours(m))
	}
	return nil
}

func formatMilestones(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = calc.FormatHours(v)
	}
	return strings.Join(parts, ", ")
}
