package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/tasklog/internal/task"
)

// Exit codes for CLI commands. Codes 3 and up mirror the core error
// kinds one-to-one so scripting callers can branch on the category
// without parsing messages.
const (
	ExitSuccess            = 0 // Successful execution
	ExitFailure            = 1 // Unclassified failure
	ExitCommandError       = 2 // Command error (bad flags, unknown task, unreadable config)
	ExitAlreadyRunning     = 3 // A session is already open
	ExitNoActiveTask       = 4 // No session is open
	ExitNoPreviousTask     = 5 // Nothing to resume
	ExitInvalidDuration    = 6 // Backdated stop rejected
	ExitCorruptLog         = 7 // Log file unparsable
	ExitInvariantViolation = 8 // More than one open interval
	ExitIOFailure          = 9 // Log file unreadable or unwritable
)

// exitCodes maps core error kinds to their exit codes.
var exitCodes = map[task.Kind]int{
	task.KindAlreadyRunning:     ExitAlreadyRunning,
	task.KindNoActiveTask:       ExitNoActiveTask,
	task.KindNoPreviousTask:     ExitNoPreviousTask,
	task.KindInvalidDuration:    ExitInvalidDuration,
	task.KindCorruptLog:         ExitCorruptLog,
	task.KindInvariantViolation: ExitInvariantViolation,
	task.KindIOFailure:          ExitIOFailure,
}

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. An explicit
// ExitError wins, then the core error kind; anything else is
// ExitFailure (1).
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if code, ok := exitCodes[task.KindOf(err)]; ok {
		return code
	}
	return ExitFailure
}

// errorCode maps an error to the machine-readable code string used in
// JSON envelopes and text error lines. Core errors keep their kind;
// everything else degrades to COMMAND_ERROR or FAILURE.
func errorCode(err error) string {
	if kind := task.KindOf(err); kind != "" {
		return string(kind)
	}
	if GetExitCode(err) == ExitCommandError {
		return "COMMAND_ERROR"
	}
	return "FAILURE"
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for errors/diagnostics (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "ALREADY_RUNNING", "COMMAND_ERROR", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format. JSON goes to Writer
// so scripts parse a single stream; text goes to the error writer.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.GetErrWriter(), "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.GetErrWriter(), "Details: %v\n", details)
	}
	return nil
}

// PresentError renders a command failure in the configured format.
// The exit code itself is the caller's concern; see GetExitCode.
func (f *OutputFormatter) PresentError(err error) {
	_ = f.Error(errorCode(err), err.Error(), nil)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
