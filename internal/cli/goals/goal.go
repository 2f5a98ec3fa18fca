package goals

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type GoalAddCmd struct {
	Name  string `arg:"" optional:"" help:"Goal name. Defaults to 'New Goal'."`
	Emoji string `short:"e" help:"Emoji shown next to the goal."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	_, goal := ctx.Docs.AddGoal()
	if c.Name != "" {
		ctx.Docs.RenameGoal(goal.ID, c.Name)
		goal.Name = c.Name
	}
	if c.Emoji != "" {
		ctx.Docs.SetEmoji(goal.ID, c.Emoji)
		goal.Emoji = c.Emoji
	}

	fmt.Printf("Added goal: %s %s (ID: %d)\n", goal.Emoji, goal.Name, goal.ID)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	doc := ctx.Docs.Document()
	if len(doc.Goals) == 0 {
		fmt.Println("No goals yet. Add one with 'goaltrack goal add'.")
		return nil
	}

	for _, g := range doc.Goals {
		fmt.Println(cli.FormatGoalLine(g))
	}
	fmt.Printf("\nTotal: %.1f hours across %d goals\n", ctx.Docs.TotalHours(), len(doc.Goals))
	return nil
}

type GoalRenameCmd struct {
	Goal string `arg:"" help:"Goal ID or exact name."`
	Name string `arg:"" help:"New goal name."`
}

func (c *GoalRenameCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if _, ok := ctx.Docs.RenameGoal(goal.ID, c.Name); !ok {
		return fmt.Errorf("failed to rename goal %d", goal.ID)
	}

	fmt.Printf("Renamed goal %d: %s -> %s\n", goal.ID, goal.Name, c.Name)
	return nil
}

type GoalEmojiCmd struct {
	Goal  string `arg:"" help:"Goal ID or exact name."`
	Emoji string `arg:"" help:"New emoji."`
}

func (c *GoalEmojiCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if _, ok := ctx.Docs.SetEmoji(goal.ID, c.Emoji); !ok {
		return fmt.Errorf("failed to update goal %d", goal.ID)
	}

	fmt.Printf("Updated emoji for %s: %s\n", goal.Name, c.Emoji)
	return nil
}

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal ID or exact name."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if !c.Yes {
		msg := fmt.Sprintf("Delete goal %q and its %d time entries?", goal.Name, len(goal.Entries))
		ok, err := ctx.ConfirmDestructive(msg, false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	// A running timer on the deleted goal must not leak a session.
	ctx.Tracker.DropGoal(goal.ID)
	ctx.SaveTracker()

	if _, ok := ctx.Docs.DeleteGoal(goal.ID); !ok {
		return fmt.Errorf("failed to delete goal %d", goal.ID)
	}

	fmt.Printf("Deleted goal: %s (ID: %d)\n", goal.Name, goal.ID)
	return nil
}
