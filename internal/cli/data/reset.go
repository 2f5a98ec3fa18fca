package data

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.ConfirmDestructive("This will permanently delete ALL goals and time entries.", true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.Tracker.Reset()
	ctx.SaveTracker()
	ctx.Docs.Reset()

	fmt.Println("✓ All data has been reset.")
	return nil
}
