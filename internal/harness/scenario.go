package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tasklog/internal/task"
)

// Scenario defines a conformance test scenario.
// Scenarios validate session semantics by executing a scripted day of
// transitions and asserting on the resulting timeline and final log.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Base is the instant step offsets count from, in RFC 3339 form.
	// Defaults to 2025-03-14T09:00:00Z.
	Base string `yaml:"base,omitempty"`

	// DayStart is the day boundary in HH:MM form, for assertions that
	// aggregate per day. Defaults to midnight.
	DayStart string `yaml:"day_start,omitempty"`

	// Steps contains the session transitions to execute in order.
	// Each step can pin an expected error kind or current task.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final timeline and log.
	// Supported types: current_task, interval_count, task_order,
	// task_total.
	Assertions []Assertion `yaml:"assertions"`
}

// Step represents a single session transition.
type Step struct {
	// Op names the transition: start, stop, stop_after, resume,
	// switch, rename, delete.
	Op string `yaml:"op"`

	// Task is the task name. Required for start, rename and delete;
	// optional for resume and switch, which fall back to the previous
	// task.
	Task string `yaml:"task,omitempty"`

	// To is the new name for rename.
	To string `yaml:"to,omitempty"`

	// At is the step's instant in minutes after the base. Steps must
	// not move backwards in time.
	At int `yaml:"at"`

	// Minutes is the session length for stop_after.
	Minutes int `yaml:"minutes,omitempty"`

	// Expect specifies the expected outcome.
	// If nil, the step must succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected step behavior.
type ExpectClause struct {
	// Error is the expected error kind (e.g. "ALREADY_RUNNING").
	// Empty means the step must succeed.
	Error string `yaml:"error,omitempty"`

	// Task is the expected current task after the step. Only checked
	// when non-empty.
	Task string `yaml:"task,omitempty"`
}

// Assertion validates the final timeline or log.
type Assertion struct {
	// Type specifies the assertion type:
	// - "current_task": Check the running task after all steps
	// - "interval_count": Check how many intervals the log holds
	// - "task_order": Check task names in first-appearance order
	// - "task_total": Check a task's total minutes
	Type string `yaml:"type"`

	// Task is the task name (used by current_task, interval_count,
	// task_total). For current_task, empty asserts that nothing runs;
	// for interval_count, empty counts the whole log.
	Task string `yaml:"task,omitempty"`

	// Day restricts task_total to one day, in YYYY-MM-DD form. Empty
	// sums across the whole log.
	Day string `yaml:"day,omitempty"`

	// Minutes is the expected total (used by task_total).
	Minutes int `yaml:"minutes,omitempty"`

	// Count is the expected number of intervals (used by
	// interval_count).
	Count int `yaml:"count,omitempty"`

	// Tasks is the expected name order (used by task_order).
	Tasks []string `yaml:"tasks,omitempty"`
}

// Step op constants.
const (
	OpStart     = "start"
	OpStop      = "stop"
	OpStopAfter = "stop_after"
	OpResume    = "resume"
	OpSwitch    = "switch"
	OpRename    = "rename"
	OpDelete    = "delete"
)

// Assertion type constants.
const (
	AssertCurrentTask   = "current_task"
	AssertIntervalCount = "interval_count"
	AssertTaskOrder     = "task_order"
	AssertTaskTotal     = "task_total"
)

// errorKinds lists the kinds an expect clause may name.
var errorKinds = map[string]bool{
	string(task.KindAlreadyRunning):     true,
	string(task.KindNoActiveTask):       true,
	string(task.KindNoPreviousTask):     true,
	string(task.KindInvalidDuration):    true,
	string(task.KindCorruptLog):         true,
	string(task.KindInvariantViolation): true,
	string(task.KindIOFailure):          true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs
	// "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	prevAt := 0
	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
		if step.At < prevAt {
			return fmt.Errorf("steps[%d]: at %d moves backwards in time (previous step at %d)", i, step.At, prevAt)
		}
		prevAt = step.At
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, s *Step) error {
	if s.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if s.At < 0 {
		return fmt.Errorf("steps[%d]: at must be non-negative", index)
	}

	switch s.Op {
	case OpStart:
		if s.Task == "" {
			return fmt.Errorf("steps[%d]: task is required for start", index)
		}
	case OpStop, OpStopAfter, OpResume, OpSwitch:
		// Task is optional; stop_after minutes are validated by the
		// engine so scenarios can assert on INVALID_DURATION.
	case OpRename:
		if s.Task == "" || s.To == "" {
			return fmt.Errorf("steps[%d]: task and to are required for rename", index)
		}
	case OpDelete:
		if s.Task == "" {
			return fmt.Errorf("steps[%d]: task is required for delete", index)
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	if s.Expect != nil && s.Expect.Error != "" && !errorKinds[s.Expect.Error] {
		return fmt.Errorf("steps[%d].expect: unknown error kind %q", index, s.Expect.Error)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertCurrentTask:
		// An empty task asserts that nothing is running.
	case AssertIntervalCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for interval_count", index)
		}
	case AssertTaskOrder:
		if len(a.Tasks) == 0 {
			return fmt.Errorf("assertions[%d]: tasks list is required for task_order", index)
		}
	case AssertTaskTotal:
		if a.Task == "" {
			return fmt.Errorf("assertions[%d]: task is required for task_total", index)
		}
		if a.Minutes < 0 {
			return fmt.Errorf("assertions[%d]: minutes must be non-negative for task_total", index)
		}
		if a.Day != "" {
			if _, err := task.ParseDay(a.Day); err != nil {
				return fmt.Errorf("assertions[%d]: %v", index, err)
			}
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
