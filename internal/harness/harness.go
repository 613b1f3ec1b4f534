package harness

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/tasklog/internal/engine"
	"github.com/roach88/tasklog/internal/task"
)

// defaultBase anchors scenarios that don't pin their own start instant.
const defaultBase = "2025-03-14T09:00:00Z"

// timeFormat renders step instants in the timeline.
const timeFormat = "2006-01-02 15:04"

// Harness executes a scenario against a fresh engine.
type Harness struct {
	engine *engine.Engine
	log    *task.Log
	logger *slog.Logger
	base   time.Time
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs against a fresh in-memory log for isolation.
// Every instant derives from the scenario's base and a step offset, so
// repeated runs produce identical timelines.
//
// Execution flow:
// 1. Resolve the base instant and day boundary
// 2. Execute steps through the engine, validating expect clauses
// 3. Evaluate assertions against the final log
// 4. Return result with pass/fail, timeline, and errors
func Run(scenario *Scenario) (*Result, error) {
	baseSpec := scenario.Base
	if baseSpec == "" {
		baseSpec = defaultBase
	}
	base, err := time.Parse(time.RFC3339, baseSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid base %q: %w", scenario.Base, err)
	}

	dayStart := time.Duration(0)
	if scenario.DayStart != "" {
		dayStart, err = task.ParseDayStart(scenario.DayStart)
		if err != nil {
			return nil, fmt.Errorf("invalid day_start: %w", err)
		}
	}

	log := task.NewLog()
	h := &Harness{
		engine: engine.New(log),
		log:    log,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
		base:   base,
	}

	result := NewResult()
	now := base
	for i, step := range scenario.Steps {
		at := base.Add(time.Duration(step.At) * time.Minute)
		now = at

		name, detail, stepErr := h.apply(step, at)
		outcome := "ok"
		if stepErr != nil {
			outcome = string(task.KindOf(stepErr))
			if outcome == "" {
				outcome = "error"
			}
		}
		result.AddEvent(TimelineEvent{
			Step:    i + 1,
			Op:      step.Op,
			Task:    name,
			At:      at.Format(timeFormat),
			Outcome: outcome,
			Detail:  detail,
		})

		h.checkExpect(result, i, step, stepErr)

		h.logger.Debug("step executed",
			"step", i+1,
			"op", step.Op,
			"task", name,
			"outcome", outcome,
		)
	}

	actx := &AssertionContext{
		Engine:   h.engine,
		Log:      log,
		DayStart: dayStart,
		Now:      now,
	}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(msg)
	}

	result.Log = log
	return result, nil
}

// apply dispatches a step to the engine. It returns the task name the
// step acted on and a short human-readable detail for the timeline.
func (h *Harness) apply(step Step, at time.Time) (string, string, error) {
	switch step.Op {
	case OpStart:
		iv, err := h.engine.Start(step.Task, at)
		if err != nil {
			return step.Task, "", err
		}
		return iv.Task, "", nil
	case OpStop:
		iv, err := h.engine.Stop(at)
		if err != nil {
			return step.Task, "", err
		}
		return iv.Task, closedDetail(iv), nil
	case OpStopAfter:
		iv, err := h.engine.StopAfter(step.Minutes, at)
		if err != nil {
			return step.Task, "", err
		}
		return iv.Task, closedDetail(iv), nil
	case OpResume:
		iv, err := h.engine.Resume(step.Task, at)
		if err != nil {
			return step.Task, "", err
		}
		return iv.Task, "", nil
	case OpSwitch:
		iv, err := h.engine.Switch(step.Task, at)
		if err != nil {
			return step.Task, "", err
		}
		return iv.Task, "", nil
	case OpRename:
		n := h.engine.Rename(step.Task, step.To)
		return step.Task, fmt.Sprintf("to %s, %d intervals", step.To, n), nil
	case OpDelete:
		n := h.engine.Delete(step.Task)
		return step.Task, fmt.Sprintf("%d intervals", n), nil
	default:
		// Unreachable after validation.
		return step.Task, "", fmt.Errorf("unknown op %q", step.Op)
	}
}

// checkExpect validates a step's outcome against its expect clause.
func (h *Harness) checkExpect(result *Result, index int, step Step, stepErr error) {
	wantKind := ""
	if step.Expect != nil {
		wantKind = step.Expect.Error
	}

	switch {
	case wantKind == "" && stepErr != nil:
		result.AddError(fmt.Sprintf("step %d (%s): unexpected error: %v", index+1, step.Op, stepErr))
	case wantKind != "" && stepErr == nil:
		result.AddError(fmt.Sprintf("step %d (%s): expected %s, got success", index+1, step.Op, wantKind))
	case wantKind != "" && stepErr != nil:
		if kind := string(task.KindOf(stepErr)); kind != wantKind {
			result.AddError(fmt.Sprintf("step %d (%s): expected %s, got %s: %v", index+1, step.Op, wantKind, kind, stepErr))
		}
	}

	if step.Expect != nil && step.Expect.Task != "" {
		current, err := h.engine.Current()
		if err != nil {
			result.AddError(fmt.Sprintf("step %d (%s): reading current task: %v", index+1, step.Op, err))
			return
		}
		want := task.CanonicalName(step.Expect.Task)
		if current != want {
			result.AddError(fmt.Sprintf("step %d (%s): expected current task %q, got %q", index+1, step.Op, want, current))
		}
	}
}

// closedDetail summarizes a closed interval for the timeline.
func closedDetail(iv task.Interval) string {
	return fmt.Sprintf("closed after %dm", int64(iv.End.Sub(iv.Start)/time.Minute))
}
