package cli

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/tasklog/internal/config"
	"github.com/roach88/tasklog/internal/engine"
	"github.com/roach88/tasklog/internal/store"
	"github.com/roach88/tasklog/internal/task"
)

// appEnv bundles what a command needs once config and log are loaded:
// the effective config, the parsed day-start offset, the interval log
// and the engine driving it, plus the invocation's single clock read.
type appEnv struct {
	cfg      config.Config
	cfgPath  string
	logPath  string
	dayStart time.Duration
	log      *task.Log
	engine   *engine.Engine
	now      time.Time
}

// loadApp resolves config and loads the interval log. Config problems
// are command errors; log problems keep their core kind so the exit
// code reflects the category.
func loadApp(opts *RootOptions) (*appEnv, error) {
	cfg, cfgPath, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	dayStart, err := cfg.DayStartOffset()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}

	logPath := cfg.LogPath()
	lg, err := store.Load(logPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("log loaded", "config", cfgPath, "path", logPath, "intervals", lg.Len())

	return &appEnv{
		cfg:      cfg,
		cfgPath:  cfgPath,
		logPath:  logPath,
		dayStart: dayStart,
		log:      lg,
		engine:   engine.New(lg),
		now:      opts.now(),
	}, nil
}

// save persists the log after a mutating command.
func (a *appEnv) save() error {
	if err := store.Save(a.logPath, a.log); err != nil {
		return err
	}
	slog.Debug("log saved", "path", a.logPath, "intervals", a.log.Len())
	return nil
}

// today returns the current calendar day under the configured day start.
func (a *appEnv) today() task.Day {
	return task.DayOf(a.now, a.dayStart)
}

// newFormatter builds an output formatter wired to the command's
// writers.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// requireTaskName rejects names that are empty or all whitespace before
// they reach the log, where any non-empty string is a valid identity.
func requireTaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewExitError(ExitCommandError, "task name must not be empty")
	}
	return nil
}
