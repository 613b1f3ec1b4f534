package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// CurrentResult is the success payload for the current command.
type CurrentResult struct {
	Running bool   `json:"running"`
	Task    string `json:"task,omitempty"`
	Since   string `json:"since,omitempty"`
	Minutes int    `json:"minutes,omitempty"`
}

// NewCurrentCommand creates the current command.
func NewCurrentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the running task",
		Long: `Show which task is currently being tracked, if any.

A pure read: the log is never written. Exits zero whether or not a
task is running; scripts that need to branch should use --format
json and check the running field.

Example:
  tasklog current
  tasklog current --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(rootOpts, cmd)
		},
	}

	return cmd
}

func runCurrent(opts *RootOptions, cmd *cobra.Command) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}

	open, err := app.log.FindOpen()
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		result := CurrentResult{}
		if open != nil {
			result.Running = true
			result.Task = open.Task
			result.Since = open.Start.Format(time.RFC3339)
			result.Minutes = int(open.Duration(app.now) / time.Minute)
		}
		return newFormatter(cmd, opts).Success(result)
	}
	if open == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No task currently running")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Current task: %s\n", open.Task)
	}
	return nil
}
