package task

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// CanonicalName returns the NFC-normalized form of a task name.
// The name is the task's identity, so composed and decomposed spellings
// of the same visible string must compare equal everywhere.
func CanonicalName(name string) string {
	return norm.NFC.String(name)
}

// Interval records one contiguous stretch of work on a task.
// A zero End marks the interval as open, meaning work is in progress.
type Interval struct {
	Task  string
	Start time.Time
	End   time.Time
}

// NewOpenInterval returns an open interval for the given task starting
// at the given instant.
func NewOpenInterval(name string, start time.Time) Interval {
	return Interval{Task: CanonicalName(name), Start: start}
}

// NewClosedInterval returns a closed interval. The end must not precede
// the start.
func NewClosedInterval(name string, start, end time.Time) (Interval, error) {
	if end.Before(start) {
		return Interval{}, NewInvariantViolation("interval end %s precedes start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Interval{Task: CanonicalName(name), Start: start, End: end}, nil
}

// Open reports whether the interval is still running.
func (iv Interval) Open() bool {
	return iv.End.IsZero()
}

// Duration returns the elapsed time of the interval. An open interval
// is measured against now.
func (iv Interval) Duration(now time.Time) time.Duration {
	if iv.Open() {
		return now.Sub(iv.Start)
	}
	return iv.End.Sub(iv.Start)
}

// WithEnd returns a closed copy of the interval ending at the given
// instant.
func (iv Interval) WithEnd(end time.Time) Interval {
	return Interval{Task: iv.Task, Start: iv.Start, End: end}
}

// WithTask returns a copy of the interval carrying a different task name.
func (iv Interval) WithTask(name string) Interval {
	return Interval{Task: CanonicalName(name), Start: iv.Start, End: iv.End}
}

// Equal reports whether two intervals denote the same task and the same
// instants. Instants are compared with time.Time.Equal, so differing
// locations or monotonic readings of the same moment compare equal.
func (iv Interval) Equal(other Interval) bool {
	if iv.Task != other.Task || !iv.Start.Equal(other.Start) {
		return false
	}
	if iv.Open() || other.Open() {
		return iv.Open() && other.Open()
	}
	return iv.End.Equal(other.End)
}
