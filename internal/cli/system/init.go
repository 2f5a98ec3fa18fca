package system

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reset any existing data back to an empty document."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		ok, err := ctx.ConfirmDestructive("This will permanently delete ALL goals and time entries.", true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Init cancelled.")
			return nil
		}
		ctx.Tracker.Reset()
		ctx.SaveTracker()
		ctx.Docs.Reset()
	}

	doc := ctx.Docs.Document()
	fmt.Printf("Initialized goaltrack storage at: %s\n", ctx.Gateway.KV().Path())
	fmt.Printf("Data version %s, %d goals\n", doc.Version, len(doc.Goals))
	return nil
}
