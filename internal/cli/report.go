package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/tasklog/internal/render"
	"github.com/roach88/tasklog/internal/report"
	"github.com/roach88/tasklog/internal/task"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	DaysAgo   int
	Yesterday bool
	From      string
	To        string
}

// ReportResult is the success payload for the report command.
type ReportResult struct {
	Days []DaySummary `json:"days"`
}

// DaySummary is one day's aggregation in JSON form.
type DaySummary struct {
	Day          string    `json:"day"`
	Tasks        []TaskRow `json:"tasks"`
	TotalMinutes int       `json:"total_minutes"`
}

// TaskRow is one task's share of a day in JSON form.
type TaskRow struct {
	Task    string  `json:"task"`
	Minutes int     `json:"minutes"`
	Percent float64 `json:"percent"`
	Running bool    `json:"running,omitempty"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report time per task",
		Long: `Report how a day was spent: per-task totals with their share of
the day, one table per day.

Defaults to today, where "today" honors the configured day start so
late-night sessions stay on the working day they belong to. A task
still running counts its elapsed time so far.

Example:
  tasklog report
  tasklog report --yesterday
  tasklog report -n 3
  tasklog report --from 2025-03-10 --to 2025-03-14`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.DaysAgo, "days-ago", "n", 0, "report the day this many days back")
	cmd.Flags().BoolVarP(&opts.Yesterday, "yesterday", "y", false, "report yesterday")
	cmd.Flags().StringVar(&opts.From, "from", "", "first day of a range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "last day of a range (YYYY-MM-DD, requires --from)")
	cmd.MarkFlagsMutuallyExclusive("days-ago", "yesterday", "from")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	app, err := loadApp(opts.RootOptions)
	if err != nil {
		return err
	}
	days, err := reportDays(opts, app.today())
	if err != nil {
		return err
	}

	summaries := make([]report.Summary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, report.Report(app.log, day, app.dayStart, app.now))
	}

	if opts.Format == "json" {
		result := ReportResult{Days: make([]DaySummary, 0, len(summaries))}
		for _, s := range summaries {
			result.Days = append(result.Days, daySummary(s))
		}
		return newFormatter(cmd, opts.RootOptions).Success(result)
	}

	r := render.New()
	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	for _, s := range summaries {
		fmt.Fprint(w, r.Table(s))
		fmt.Fprintln(w)
	}
	return nil
}

// reportDays resolves the flag combination to the list of days to
// report. Range selection wins over --yesterday and --days-ago; cobra
// already rejects conflicting combinations.
func reportDays(opts *ReportOptions, today task.Day) ([]task.Day, error) {
	if opts.To != "" && opts.From == "" {
		return nil, NewExitError(ExitCommandError, "--to requires --from")
	}
	switch {
	case opts.From != "":
		from, err := task.ParseDay(opts.From)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --from", err)
		}
		to := today
		if opts.To != "" {
			if to, err = task.ParseDay(opts.To); err != nil {
				return nil, WrapExitError(ExitCommandError, "invalid --to", err)
			}
		}
		if to.Before(from) {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("--to %s precedes --from %s", to, from))
		}
		var days []task.Day
		for d := from; !d.After(to); d = d.AddDays(1) {
			days = append(days, d)
		}
		return days, nil
	case opts.Yesterday:
		return []task.Day{today.AddDays(-1)}, nil
	default:
		if opts.DaysAgo < 0 {
			return nil, NewExitError(ExitCommandError, "days back must not be negative")
		}
		return []task.Day{today.AddDays(-opts.DaysAgo)}, nil
	}
}

// daySummary converts a summary to its JSON form. Percentages match
// the rendered table: each task's share of the day's total.
func daySummary(s report.Summary) DaySummary {
	out := DaySummary{
		Day:          s.Day.String(),
		Tasks:        make([]TaskRow, 0, len(s.Rows)),
		TotalMinutes: int(s.Total / time.Minute),
	}
	for _, row := range s.Rows {
		percent := 0.0
		if s.Total > 0 {
			percent = float64(row.Duration) / float64(s.Total) * 100
		}
		out.Tasks = append(out.Tasks, TaskRow{
			Task:    row.Task,
			Minutes: int(row.Duration / time.Minute),
			Percent: percent,
			Running: row.Running,
		})
	}
	return out
}
