package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// ResumeResult is the success payload for the resume command.
type ResumeResult struct {
	Task  string `json:"task"`
	Start string `json:"start"`
}

// NewResumeCommand creates the resume command.
func NewResumeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume [task]",
		Short: "Resume a stopped task",
		Long: `Open a new session on a task that was tracked before.

Without an argument the most recently stopped task is resumed. A
named resume requires the name to exist in the log; resuming never
reopens a closed session, it always records a fresh one.

Example:
  tasklog resume
  tasklog resume coding`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runResume(rootOpts, cmd, name)
		},
	}

	return cmd
}

func runResume(opts *RootOptions, cmd *cobra.Command, name string) error {
	if name != "" {
		if err := requireTaskName(name); err != nil {
			return err
		}
	}
	app, err := loadApp(opts)
	if err != nil {
		return err
	}

	if name != "" && !app.log.HasTask(name) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown task %q: nothing to resume", name))
	}

	iv, err := app.engine.Resume(name, app.now)
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}

	if opts.Format == "json" {
		return newFormatter(cmd, opts).Success(ResumeResult{
			Task:  iv.Task,
			Start: iv.Start.Format(time.RFC3339),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Resumed task: %s\n", iv.Task)
	return nil
}
