package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tasklog/internal/task"
)

// RenameResult is the success payload for the rename command.
type RenameResult struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Intervals int    `json:"intervals"`
}

// NewRenameCommand creates the rename command.
func NewRenameCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <task> <new-name>",
		Short: "Rename a task",
		Long: `Rename a task across its entire history.

The name is the task's identity, so every interval is rewritten, the
open one included. Renaming onto an existing name merges the two
histories; renaming a name with no intervals is a no-op.

Example:
  tasklog rename standup meeting`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(rootOpts, cmd, args[0], args[1])
		},
	}

	return cmd
}

func runRename(opts *RootOptions, cmd *cobra.Command, oldName, newName string) error {
	if err := requireTaskName(oldName); err != nil {
		return err
	}
	if err := requireTaskName(newName); err != nil {
		return err
	}
	app, err := loadApp(opts)
	if err != nil {
		return err
	}

	count := app.engine.Rename(oldName, newName)
	if count > 0 {
		if err := app.save(); err != nil {
			return err
		}
	}

	from, to := task.CanonicalName(oldName), task.CanonicalName(newName)
	if opts.Format == "json" {
		return newFormatter(cmd, opts).Success(RenameResult{
			From:      from,
			To:        to,
			Intervals: count,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed task: %s to %s (%d intervals)\n", from, to, count)
	return nil
}
