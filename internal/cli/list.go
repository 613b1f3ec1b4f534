package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tasklog/internal/report"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	DaysAgo int
}

// ListResult is the success payload for the list command.
type ListResult struct {
	Day   string   `json:"day"`
	Tasks []string `json:"tasks"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's tasks",
		Long: `List the tasks tracked on a day, one name per line, in the order
each was first started. Defaults to today.

Example:
  tasklog list
  tasklog list -n 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.DaysAgo, "days-ago", "n", 0, "list the day this many days back")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	if opts.DaysAgo < 0 {
		return NewExitError(ExitCommandError, "days back must not be negative")
	}
	app, err := loadApp(opts.RootOptions)
	if err != nil {
		return err
	}

	day := app.today().AddDays(-opts.DaysAgo)
	names := report.List(app.log, day, app.dayStart)

	if opts.Format == "json" {
		if names == nil {
			names = []string{}
		}
		return newFormatter(cmd, opts.RootOptions).Success(ListResult{
			Day:   day.String(),
			Tasks: names,
		})
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
