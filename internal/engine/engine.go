package engine

import (
	"time"

	"github.com/roach88/tasklog/internal/task"
)

// State is the session state derived from the log.
type State int

const (
	// Idle means no interval is open.
	Idle State = iota

	// Running means exactly one interval is open.
	Running
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Engine executes session transitions against an interval log.
//
// The engine mutates the log in place and holds no other state. Every
// operation validates before mutating: on error the log is unchanged.
type Engine struct {
	log *task.Log
}

// New creates an engine over the given log.
func New(log *task.Log) *Engine {
	return &Engine{log: log}
}

// State reports whether a session is open.
func (e *Engine) State() (State, error) {
	open, err := e.log.FindOpen()
	if err != nil {
		return Idle, err
	}
	if open == nil {
		return Idle, nil
	}
	return Running, nil
}

// Current returns the running task's name, or the empty string when no
// session is open.
func (e *Engine) Current() (string, error) {
	open, err := e.log.FindOpen()
	if err != nil {
		return "", err
	}
	if open == nil {
		return "", nil
	}
	return open.Task, nil
}

// Start opens a session on the named task at the given instant. Fails
// with AlreadyRunning when a session is open; the error names the
// running task so the caller can report it.
func (e *Engine) Start(name string, at time.Time) (task.Interval, error) {
	open, err := e.log.FindOpen()
	if err != nil {
		return task.Interval{}, err
	}
	if open != nil {
		return task.Interval{}, task.NewAlreadyRunning(open.Task)
	}
	iv := task.NewOpenInterval(name, at)
	e.log.Append(iv)
	return iv, nil
}

// Stop closes the open session at the given instant and returns the
// closed interval. Fails with NoActiveTask when idle. Stopping twice in
// a row therefore fails, and the second call leaves the log unchanged.
func (e *Engine) Stop(at time.Time) (task.Interval, error) {
	return e.log.CloseOpen(at)
}

// StopAfter closes the open session the given number of minutes after
// its own start, regardless of when the stop is issued. at is the
// instant of the stop itself and bounds the backdated end: a session
// cannot be credited with time that has not elapsed yet.
func (e *Engine) StopAfter(minutes int, at time.Time) (task.Interval, error) {
	if minutes < 0 {
		return task.Interval{}, task.NewInvalidDuration("duration must not be negative, got %d minutes", minutes)
	}
	open, err := e.log.FindOpen()
	if err != nil {
		return task.Interval{}, err
	}
	if open == nil {
		return task.Interval{}, task.NewNoActiveTask()
	}
	end := open.Start.Add(time.Duration(minutes) * time.Minute)
	if end.After(at) {
		return task.Interval{}, task.NewInvalidDuration(
			"%d minutes from session start lands in the future", minutes)
	}
	return e.log.CloseOpen(end)
}

// Resume opens a new session at the given instant. An empty name picks
// the task of the most recently closed interval and fails with
// NoPreviousTask when there is none. Closed history is never reopened;
// resuming always appends a fresh interval.
func (e *Engine) Resume(name string, at time.Time) (task.Interval, error) {
	open, err := e.log.FindOpen()
	if err != nil {
		return task.Interval{}, err
	}
	if open != nil {
		return task.Interval{}, task.NewAlreadyRunning(open.Task)
	}
	if name == "" {
		last := e.log.LastClosed()
		if last == nil {
			return task.Interval{}, task.NewNoPreviousTask()
		}
		name = last.Task
	}
	iv := task.NewOpenInterval(name, at)
	e.log.Append(iv)
	return iv, nil
}

// Switch closes the open session, if any, and starts the named task at
// the same instant. When idle it degrades to a plain start. An empty
// name switches to the task that was running before the current one,
// resolved before the close so a task never switches to itself.
func (e *Engine) Switch(name string, at time.Time) (task.Interval, error) {
	if name == "" {
		last := e.log.LastClosed()
		if last == nil {
			return task.Interval{}, task.NewNoPreviousTask()
		}
		name = last.Task
	}
	if _, err := e.log.CloseOpen(at); err != nil && !task.IsNoActiveTask(err) {
		return task.Interval{}, err
	}
	return e.Start(name, at)
}

// Rename rewrites every interval of oldName to newName, the open one
// included, and returns the rewrite count. Renaming is idempotent: an
// absent name is a no-op returning zero, and renaming onto an existing
// name merges the two histories.
func (e *Engine) Rename(oldName, newName string) int {
	return e.log.RenameTask(oldName, newName)
}

// Delete removes every interval of the named task and returns the
// removal count. Deleting the running task drops its open interval too,
// leaving the engine idle with that stretch of work recorded nowhere.
func (e *Engine) Delete(name string) int {
	return e.log.DeleteTask(name)
}
