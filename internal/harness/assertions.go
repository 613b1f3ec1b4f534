package harness

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/roach88/tasklog/internal/engine"
	"github.com/roach88/tasklog/internal/report"
	"github.com/roach88/tasklog/internal/task"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string          // Assertion type for categorization
	Expected string          // Human-readable expected outcome
	Actual   string          // Human-readable actual outcome
	Timeline []TimelineEvent // Full timeline for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)

	// Expected vs Actual (most important info)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nTimeline:\n")
	for _, event := range e.Timeline {
		name := event.Op
		if event.Task != "" {
			name += " " + event.Task
		}
		fmt.Fprintf(&buf, "  [%d] %s @ %s (%s)\n", event.Step, name, event.At, event.Outcome)
	}

	return buf.String()
}

// AssertionContext provides the final state for evaluating assertions.
type AssertionContext struct {
	// Engine exposes the session state after all steps ran.
	Engine *engine.Engine

	// Log is the final interval log.
	Log *task.Log

	// DayStart is the scenario's day boundary.
	DayStart time.Duration

	// Now is the last step's instant. Open intervals are measured
	// against it.
	Now time.Time
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertCurrentTask:
			err = assertCurrentTask(actx, result.Timeline, assertion)
		case AssertIntervalCount:
			err = assertIntervalCount(actx, result.Timeline, assertion)
		case AssertTaskOrder:
			err = assertTaskOrder(actx, result.Timeline, assertion)
		case AssertTaskTotal:
			err = assertTaskTotal(actx, result.Timeline, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

// assertCurrentTask checks the running task after all steps. An empty
// expected task asserts that nothing is running.
func assertCurrentTask(actx *AssertionContext, timeline []TimelineEvent, assertion Assertion) error {
	current, err := actx.Engine.Current()
	if err != nil {
		return &AssertionError{
			Type:     AssertCurrentTask,
			Expected: describeCurrent(task.CanonicalName(assertion.Task)),
			Actual:   fmt.Sprintf("log error: %v", err),
			Timeline: timeline,
		}
	}

	want := task.CanonicalName(assertion.Task)
	if current != want {
		return &AssertionError{
			Type:     AssertCurrentTask,
			Expected: describeCurrent(want),
			Actual:   describeCurrent(current),
			Timeline: timeline,
		}
	}

	return nil
}

// describeCurrent renders a current-task value for failure messages.
func describeCurrent(name string) string {
	if name == "" {
		return "no task running"
	}
	return fmt.Sprintf("task %q running", name)
}

// assertIntervalCount checks how many intervals the log holds, for one
// task or overall.
func assertIntervalCount(actx *AssertionContext, timeline []TimelineEvent, assertion Assertion) error {
	count := 0
	if assertion.Task == "" {
		count = actx.Log.Len()
	} else {
		want := task.CanonicalName(assertion.Task)
		for _, iv := range actx.Log.Intervals() {
			if iv.Task == want {
				count++
			}
		}
	}

	if count != assertion.Count {
		subject := "the log"
		if assertion.Task != "" {
			subject = fmt.Sprintf("task %q", assertion.Task)
		}
		return &AssertionError{
			Type:     AssertIntervalCount,
			Expected: fmt.Sprintf("%d intervals for %s", assertion.Count, subject),
			Actual:   fmt.Sprintf("%d intervals", count),
			Timeline: timeline,
		}
	}

	return nil
}

// assertTaskOrder checks task names in order of first appearance.
func assertTaskOrder(actx *AssertionContext, timeline []TimelineEvent, assertion Assertion) error {
	want := make([]string, len(assertion.Tasks))
	for i, name := range assertion.Tasks {
		want[i] = task.CanonicalName(name)
	}

	got := actx.Log.TaskNames()
	if !slices.Equal(got, want) {
		return &AssertionError{
			Type:     AssertTaskOrder,
			Expected: fmt.Sprintf("tasks in order %v", want),
			Actual:   fmt.Sprintf("tasks in order %v", got),
			Timeline: timeline,
		}
	}

	return nil
}

// assertTaskTotal checks a task's total minutes, for one day or across
// the whole log. Open intervals are measured at the last step's time.
func assertTaskTotal(actx *AssertionContext, timeline []TimelineEvent, assertion Assertion) error {
	want := task.CanonicalName(assertion.Task)

	var total time.Duration
	if assertion.Day != "" {
		day, err := task.ParseDay(assertion.Day)
		if err != nil {
			// Unreachable after validation.
			return err
		}
		summary := report.Report(actx.Log, day, actx.DayStart, actx.Now)
		for _, row := range summary.Rows {
			if row.Task == want {
				total = row.Duration
			}
		}
	} else {
		for _, iv := range actx.Log.Intervals() {
			if iv.Task == want {
				total += iv.Duration(actx.Now)
			}
		}
	}

	got := int(total / time.Minute)
	if got != assertion.Minutes {
		scope := "overall"
		if assertion.Day != "" {
			scope = "on " + assertion.Day
		}
		return &AssertionError{
			Type:     AssertTaskTotal,
			Expected: fmt.Sprintf("%d minutes for task %q %s", assertion.Minutes, want, scope),
			Actual:   fmt.Sprintf("%d minutes", got),
			Timeline: timeline,
		}
	}

	return nil
}
