package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/cli/data"
	"github.com/goaltrack/goaltrack/internal/cli/entries"
	"github.com/goaltrack/goaltrack/internal/cli/goals"
	"github.com/goaltrack/goaltrack/internal/cli/system"
	"github.com/goaltrack/goaltrack/internal/cli/timers"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/docstore"
	errs "github.com/goaltrack/goaltrack/internal/errors"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/storage"
	"github.com/goaltrack/goaltrack/internal/timer"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON file provider, anything else SQLite." type:"path" default:"~/.config/goaltrack/goaltrack.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize goaltrack storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Add    entries.AddCmd   `cmd:"" help:"Log hours on a goal."`
	Log    entries.LogCmd   `cmd:"" help:"Show time entries for a daily, weekly, or monthly view."`
	Export data.ExportCmd   `cmd:"" help:"Export all data to a JSON file."`
	Import data.ImportCmd   `cmd:"" help:"Import data from an export file, replacing current data."`
	Reset  data.ResetCmd    `cmd:"" help:"Delete all goals and time entries."`
	Goal   struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a new goal."`
		List   goals.GoalListCmd   `cmd:"" help:"List all goals." default:"1"`
		Rename goals.GoalRenameCmd `cmd:"" help:"Rename a goal."`
		Emoji  goals.GoalEmojiCmd  `cmd:"" help:"Change a goal's emoji."`
		Delete goals.GoalDeleteCmd `cmd:"" help:"Delete a goal and its entries."`
	} `cmd:"" help:"Manage goals."`
	Milestones struct {
		Set  goals.MilestonesSetCmd  `cmd:"" help:"Set milestone thresholds for a goal."`
		Show goals.MilestonesShowCmd `cmd:"" help:"Show a goal's milestones." default:"1"`
	} `cmd:"" help:"Manage milestone thresholds."`
	Entry struct {
		Delete entries.DeleteCmd `cmd:"" help:"Delete a time entry."`
	} `cmd:"" help:"Manage time entries."`
	Timer struct {
		Start  timers.StartCmd  `cmd:"" help:"Start a timer for a goal."`
		Stop   timers.StopCmd   `cmd:"" help:"Stop a timer and log the elapsed time."`
		Status timers.StatusCmd `cmd:"" help:"Show running timers." default:"1"`
	} `cmd:"" help:"Manage goal timers."`
	Backup struct {
		Create  data.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    data.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore data.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Settings system.SettingsCmd `cmd:"" help:"View or change application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("goaltrack"),
		kong.Description("Personal goal and time tracking companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errs.Fatalf("failed to initialize logging: %v", err)
	}

	kv, err := storage.Open(CLI.Config)
	if err != nil {
		errs.Fatal(err)
	}
	defer kv.Close()

	gw := storage.NewGateway(kv)

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	docs, report := docstore.Load(gw, exportDir)
	if report.ValidationFailed {
		errs.Warnf("stored data failed validation and was replaced with an empty document")
		if report.RecoveryBackupPath != "" {
			fmt.Fprintf(os.Stderr, "         The old data was saved to %s\n", report.RecoveryBackupPath)
		}
	}

	appCtx := &cli.Context{
		Gateway:   gw,
		Docs:      docs,
		Tracker:   timer.New(),
		Confirm:   cli.HuhConfirmer{},
		ExportDir: exportDir,
	}
	appCtx.RestoreTracker()
	appCtx.PerformDailyBackup()

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}
