package harness

import "github.com/roach88/tasklog/internal/task"

// TimelineEvent records one executed step and its outcome.
// This provides a concrete type for the timeline slice.
type TimelineEvent struct {
	Step    int    `json:"step"`
	Op      string `json:"op"`
	Task    string `json:"task,omitempty"`
	At      string `json:"at"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every step and assertion matched.
	Pass bool `json:"pass"`

	// Timeline contains all executed steps in order.
	// Used for assertion failure context and golden comparison.
	Timeline []TimelineEvent `json:"timeline"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Log is the final interval log, for callers that want to inspect
	// state beyond the built-in assertions.
	Log *task.Log `json:"-"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Timeline: []TimelineEvent{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// AddEvent appends an executed step to the timeline.
func (r *Result) AddEvent(e TimelineEvent) {
	r.Timeline = append(r.Timeline, e)
}
