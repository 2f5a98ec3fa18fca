package data

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type ExportCmd struct {
	Dir string `short:"d" help:"Directory to write the export file to. Defaults to the current directory."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	dir := c.Dir
	if dir == "" {
		dir = ctx.ExportDir
	}

	doc := ctx.Docs.Document()
	path, err := ctx.Gateway.Export(doc.Goals, doc, dir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported %d goals to %s\n", len(doc.Goals), path)
	return nil
}
