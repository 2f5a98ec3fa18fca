package system

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DarkMode *bool `help:"Enable or disable dark mode."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.List || c.DarkMode == nil {
		doc := ctx.Docs.Document()
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:     %s\n", doc.Settings.Timezone)
		fmt.Printf("  Date Format:  %s\n", doc.Settings.DateFormat)
		fmt.Printf("  Default View: %s\n", doc.Settings.DefaultView)
		fmt.Printf("  Dark Mode:    %v\n", ctx.Gateway.DarkMode())
		if c.DarkMode == nil && !c.List {
			fmt.Println("\nUse --dark-mode=true or --dark-mode=false to change the theme.")
		}
		return nil
	}

	if err := ctx.Gateway.SetDarkMode(*c.DarkMode); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
