package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tasklog/internal/task"
)

// DeleteResult is the success payload for the delete command.
type DeleteResult struct {
	Task       string `json:"task"`
	Intervals  int    `json:"intervals"`
	WasRunning bool   `json:"was_running"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task>",
		Short: "Delete a task and its history",
		Long: `Delete every interval recorded for a task.

Destructive and silent about it: there is no confirmation prompt and
no undo beyond restoring the log file. Deleting the running task
discards its open session with nothing recorded for it.

Example:
  tasklog delete scratch`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runDelete(opts *RootOptions, cmd *cobra.Command, name string) error {
	if err := requireTaskName(name); err != nil {
		return err
	}
	app, err := loadApp(opts)
	if err != nil {
		return err
	}

	running, err := app.engine.Current()
	if err != nil {
		return err
	}
	wasRunning := running != "" && running == task.CanonicalName(name)

	count := app.engine.Delete(name)
	if count > 0 {
		if err := app.save(); err != nil {
			return err
		}
	}
	if wasRunning {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: deleted the running task; its open session was discarded")
	}

	canonical := task.CanonicalName(name)
	if opts.Format == "json" {
		return newFormatter(cmd, opts).Success(DeleteResult{
			Task:       canonical,
			Intervals:  count,
			WasRunning: wasRunning,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task: %s (%d intervals)\n", canonical, count)
	return nil
}
