package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// SwitchOptions holds flags for the switch command.
type SwitchOptions struct {
	*RootOptions
	Create bool
}

// SwitchResult is the success payload for the switch command.
type SwitchResult struct {
	Task    string `json:"task"`
	Created bool   `json:"created"`
	Start   string `json:"start"`
	Stopped string `json:"stopped,omitempty"`
}

// NewSwitchCommand creates the switch command.
func NewSwitchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SwitchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "switch <task>",
		Short: "Switch to another task",
		Long: `Stop the running task and start the named one in a single step.

Both sides share one instant, so the day's total has no gap and no
overlap where the handover happened. When nothing is running, switch
degrades to a plain start. Unknown names are gated by --create
exactly like start.

Example:
  tasklog switch meeting
  tasklog switch standup --create`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(opts, cmd, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Create, "create", "c", false, "allow a task name not seen before")

	return cmd
}

func runSwitch(opts *SwitchOptions, cmd *cobra.Command, name string) error {
	if err := requireTaskName(name); err != nil {
		return err
	}
	app, err := loadApp(opts.RootOptions)
	if err != nil {
		return err
	}

	// Resolve the gate before any mutation so a rejected switch leaves
	// the current task running.
	created := !app.log.HasTask(name)
	if created && !opts.Create {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown task %q: pass --create to switch to a new task", name))
	}
	stopped, err := app.engine.Current()
	if err != nil {
		return err
	}

	iv, err := app.engine.Switch(name, app.now)
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}

	if opts.Format == "json" {
		return newFormatter(cmd, opts.RootOptions).Success(SwitchResult{
			Task:    iv.Task,
			Created: created,
			Start:   iv.Start.Format(time.RFC3339),
			Stopped: stopped,
		})
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to new task: %s\n", iv.Task)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to task: %s\n", iv.Task)
	}
	return nil
}
