package entries

import (
	"fmt"
	"time"

	"github.com/goaltrack/goaltrack/internal/calc"
	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/dateutil"
	"github.com/goaltrack/goaltrack/internal/models"
)

type LogCmd struct {
	Goal string `short:"g" help:"Limit to one goal (ID or exact name)."`
	View string `short:"v" enum:"daily,weekly,monthly" default:"daily" help:"Calendar view: daily, weekly, or monthly."`
	From string `help:"Range start (YYYY-MM-DD). Overrides --view together with --to."`
	To   string `help:"Range end (YYYY-MM-DD). Overrides --view together with --from."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	doc := ctx.Docs.Document()
	loc, err := dateutil.LoadLocation(doc.Settings.Timezone)
	if err != nil {
		loc = time.Local
	}

	start, end, err := c.resolveRange(loc)
	if err != nil {
		return err
	}

	goals := doc.Goals
	if c.Goal != "" {
		goal, err := ctx.ResolveGoal(c.Goal)
		if err != nil {
			return err
		}
		goals = []models.Goal{goal}
	}

	fmt.Printf("Entries from %s to %s\n", dateutil.FormatDate(start), dateutil.FormatDate(end))

	total := 0.0
	shown := 0
	for _, g := range goals {
		entries := dateutil.EntriesInRange(g.Entries, start, end)
		if len(entries) == 0 {
			continue
		}

		fmt.Printf("\n%s %s\n", g.Emoji, g.Name)
		grouped, dates := dateutil.GroupEntriesByDate(entries)
		for _, date := range dates {
			fmt.Printf(" %s\n", date)
			for _, e := range grouped[date] {
				fmt.Println(cli.FormatEntryLine(e))
				total += e.Hours
				shown++
			}
		}
	}

	if shown == 0 {
		fmt.Println("\nNo entries in this range.")
		return nil
	}
	fmt.Printf("\n%d entries, %s h total\n", shown, calc.FormatHours(total))
	return nil
}

func (c *LogCmd) resolveRange(loc *time.Location) (time.Time, time.Time, error) {
	if c.From != "" || c.To != "" {
		if c.From == "" || c.To == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be given together")
		}
		start, err := dateutil.ParseDate(c.From, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
		end, err := dateutil.ParseDate(c.To, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("--to must not be before --from")
		}
		return start, end, nil
	}
	return cli.RangeForView(c.View, time.Now().In(loc))
}
