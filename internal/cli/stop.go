package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/tasklog/internal/task"
)

// StopOptions holds flags for the stop command.
type StopOptions struct {
	*RootOptions
	Minutes int
}

// StopResult is the success payload for the stop command.
type StopResult struct {
	Task    string `json:"task"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Minutes int    `json:"minutes"`
}

// NewStopCommand creates the stop command.
func NewStopCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StopOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running task",
		Long: `Stop the currently running task.

Always closes the open session, even one started on a previous day.
With --minutes the session is closed that many minutes after its own
start instead of now, recording an honest duration when the stop
comes late. The backdated end may not land in the future.

Example:
  tasklog stop
  tasklog stop --minutes 25`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop(opts, cmd, cmd.Flags().Changed("minutes"))
		},
	}

	cmd.Flags().IntVarP(&opts.Minutes, "minutes", "d", 0, "close the session this many minutes after its start")

	return cmd
}

func runStop(opts *StopOptions, cmd *cobra.Command, backdate bool) error {
	app, err := loadApp(opts.RootOptions)
	if err != nil {
		return err
	}

	var iv task.Interval
	if backdate {
		iv, err = app.engine.StopAfter(opts.Minutes, app.now)
	} else {
		iv, err = app.engine.Stop(app.now)
	}
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}

	if opts.Format == "json" {
		return newFormatter(cmd, opts.RootOptions).Success(StopResult{
			Task:    iv.Task,
			Start:   iv.Start.Format(time.RFC3339),
			End:     iv.End.Format(time.RFC3339),
			Minutes: int(iv.End.Sub(iv.Start) / time.Minute),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stopped task: %s\n", iv.Task)
	return nil
}
