package data

import (
	"fmt"
	"os"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Export file to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if !c.Yes {
		msg := fmt.Sprintf("Importing %s will replace ALL current goals and entries.", c.File)
		ok, err := ctx.ConfirmDestructive(msg, false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	doc, err := ctx.Docs.Import(raw)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	// Imported data replaces the goal set, so running sessions may now
	// point at goals that no longer exist.
	for _, id := range ctx.Tracker.ActiveGoals() {
		if doc.FindGoal(id) == nil {
			ctx.Tracker.DropGoal(id)
		}
	}
	ctx.SaveTracker()

	fmt.Printf("✓ Imported %d goals from %s\n", len(doc.Goals), c.File)
	return nil
}
