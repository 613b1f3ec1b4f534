package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// StartOptions holds flags for the start command.
type StartOptions struct {
	*RootOptions
	Create bool
}

// StartResult is the success payload for the start command.
type StartResult struct {
	Task    string `json:"task"`
	Created bool   `json:"created"`
	Start   string `json:"start"`
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "start <task>",
		Short: "Start tracking a task",
		Long: `Start tracking time against a task.

The name must already appear in the log unless --create is given;
the guard catches typos before they scatter time across misspelled
tasks. Fails when a task is already running: stop or switch first.

Example:
  tasklog start coding
  tasklog start writeup --create`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(opts, cmd, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Create, "create", "c", false, "allow a task name not seen before")

	return cmd
}

func runStart(opts *StartOptions, cmd *cobra.Command, name string) error {
	if err := requireTaskName(name); err != nil {
		return err
	}
	app, err := loadApp(opts.RootOptions)
	if err != nil {
		return err
	}

	created := !app.log.HasTask(name)
	if created && !opts.Create {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown task %q: pass --create to start a new task", name))
	}

	iv, err := app.engine.Start(name, app.now)
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}

	if opts.Format == "json" {
		return newFormatter(cmd, opts.RootOptions).Success(StartResult{
			Task:    iv.Task,
			Created: created,
			Start:   iv.Start.Format(time.RFC3339),
		})
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Started new task: %s\n", iv.Task)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Started task: %s\n", iv.Task)
	}
	return nil
}
