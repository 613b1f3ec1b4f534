package task

import (
	"errors"
	"fmt"
)

// Error represents a failure detected by the log, the store, or the
// session engine.
//
// Every error carries a Kind so callers can branch on the category
// without parsing messages. The command layer maps each Kind to a
// distinct process exit code.
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// Message is a human-readable description.
	Message string

	// Task is the affected task name, when one is known.
	Task string

	// Line is the 1-based log line, for errors raised while reading
	// the log file.
	Line int

	// Err is the underlying cause, when the failure wraps an OS error.
	Err error
}

// Kind categorizes task errors.
type Kind string

const (
	// KindAlreadyRunning indicates a session is open and another start
	// was requested.
	KindAlreadyRunning Kind = "ALREADY_RUNNING"

	// KindNoActiveTask indicates a stop was requested with no open session.
	KindNoActiveTask Kind = "NO_ACTIVE_TASK"

	// KindNoPreviousTask indicates a resume found no closed interval to
	// take a task name from.
	KindNoPreviousTask Kind = "NO_PREVIOUS_TASK"

	// KindInvalidDuration indicates a stop time that would precede the
	// session start or claim time that has not elapsed yet.
	KindInvalidDuration Kind = "INVALID_DURATION"

	// KindCorruptLog indicates the log file exists but cannot be decoded
	// or holds a structurally invalid record.
	KindCorruptLog Kind = "CORRUPT_LOG"

	// KindInvariantViolation indicates the log holds more than one open
	// interval. This is unrepairable without operator intervention; the
	// open session is never picked automatically.
	KindInvariantViolation Kind = "INVARIANT_VIOLATION"

	// KindNameConflict is reserved. Renames onto an existing name merge
	// the two histories instead of failing, so nothing raises it today.
	KindNameConflict Kind = "NAME_CONFLICT"

	// KindIOFailure indicates the log file could not be read or written.
	KindIOFailure Kind = "IO_FAILURE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Task != "":
		return fmt.Sprintf("%s: %s (task=%s)", e.Kind, e.Message, e.Task)
	case e.Line > 0:
		return fmt.Sprintf("%s: %s (line=%d)", e.Kind, e.Message, e.Line)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from an error. Returns the empty Kind when
// the error is not a task error. Uses errors.As to handle wrapping.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// IsAlreadyRunning reports whether the error is an already-running error.
func IsAlreadyRunning(err error) bool {
	return KindOf(err) == KindAlreadyRunning
}

// IsNoActiveTask reports whether the error is a no-active-task error.
func IsNoActiveTask(err error) bool {
	return KindOf(err) == KindNoActiveTask
}

// IsNoPreviousTask reports whether the error is a no-previous-task error.
func IsNoPreviousTask(err error) bool {
	return KindOf(err) == KindNoPreviousTask
}

// IsInvalidDuration reports whether the error is an invalid-duration error.
func IsInvalidDuration(err error) bool {
	return KindOf(err) == KindInvalidDuration
}

// IsCorruptLog reports whether the error is a corrupt-log error.
func IsCorruptLog(err error) bool {
	return KindOf(err) == KindCorruptLog
}

// NewAlreadyRunning creates an Error for a start while a session is open.
func NewAlreadyRunning(taskName string) *Error {
	return &Error{
		Kind:    KindAlreadyRunning,
		Message: "a task is already running",
		Task:    taskName,
	}
}

// NewNoActiveTask creates an Error for a stop with no open session.
func NewNoActiveTask() *Error {
	return &Error{
		Kind:    KindNoActiveTask,
		Message: "no task is currently running",
	}
}

// NewNoPreviousTask creates an Error for a resume with no history.
func NewNoPreviousTask() *Error {
	return &Error{
		Kind:    KindNoPreviousTask,
		Message: "no previous task to resume",
	}
}

// NewInvalidDuration creates an Error for an impossible stop time.
func NewInvalidDuration(format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidDuration,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewCorruptLog creates an Error for an undecodable or invalid log record.
// line is the 1-based position of the offending record.
func NewCorruptLog(line int, format string, args ...any) *Error {
	return &Error{
		Kind:    KindCorruptLog,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}

// NewInvariantViolation creates an Error for a log with more than one
// open interval.
func NewInvariantViolation(format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvariantViolation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewIOFailure creates an Error wrapping a filesystem failure.
func NewIOFailure(message string, err error) *Error {
	return &Error{
		Kind:    KindIOFailure,
		Message: message,
		Err:     err,
	}
}
