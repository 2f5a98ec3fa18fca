package entries

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type DeleteCmd struct {
	Goal  string `arg:"" help:"Goal ID or exact name."`
	Entry string `arg:"" help:"Entry ID to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if _, ok := ctx.Docs.DeleteEntry(goal.ID, c.Entry); !ok {
		return fmt.Errorf("no entry %s on goal %s", c.Entry, goal.Name)
	}

	fmt.Printf("Deleted entry %s from %s\n", c.Entry, goal.Name)
	return nil
}
