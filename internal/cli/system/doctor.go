package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/goaltrack/goaltrack/internal/backup"
	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: document validation
	if err := checkDocument(ctx); err != nil {
		fmt.Printf("❌ Data validation: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data validation: OK\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: concurrent processes (warning only)
	if err := checkOtherProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	// Check 6: orphaned timer sessions (warning only)
	if err := checkTimerSessions(ctx); err != nil {
		fmt.Printf("⚠ Timer sessions: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Timer sessions: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if _, _, err := ctx.Gateway.KV().Get(constants.KeyGoals); err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	return nil
}

func checkDocument(ctx *cli.Context) error {
	result := validation.CheckDocument(ctx.Docs.Document())
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Gateway.KV().Path())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'goaltrack backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkOtherProcesses warns when another goaltrack process is alive, since
// two writers against the same storage file can clobber each other.
func checkOtherProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d other goaltrack process(es) running", count)
	}
	return nil
}

func checkTimerSessions(ctx *cli.Context) error {
	doc := ctx.Docs.Document()
	for _, id := range ctx.Tracker.ActiveGoals() {
		if doc.FindGoal(id) == nil {
			return fmt.Errorf("timer session references missing goal %d; it will be dropped on the next import or reset", id)
		}
	}
	return nil
}
