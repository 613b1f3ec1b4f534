package task

import "time"

// Log is the ordered record of every interval ever tracked. It is the
// sole owner of historical truth: the session engine and the report
// aggregator hold no state of their own.
//
// The log is append-mostly. Renames and deletes rewrite it in place,
// and the whole log is rewritten to disk after every mutation.
//
// Log methods provide mechanics only. Policy, such as which task a bare
// resume picks, lives in the engine.
type Log struct {
	intervals []Interval
}

// NewLog creates a log holding the given intervals in order.
func NewLog(intervals ...Interval) *Log {
	l := &Log{}
	l.intervals = append(l.intervals, intervals...)
	return l
}

// Len returns the number of intervals in the log.
func (l *Log) Len() int {
	return len(l.intervals)
}

// Intervals returns a copy of every interval in log order.
func (l *Log) Intervals() []Interval {
	out := make([]Interval, len(l.intervals))
	copy(out, l.intervals)
	return out
}

// Append adds an interval to the end of the log.
func (l *Log) Append(iv Interval) {
	l.intervals = append(l.intervals, iv)
}

// FindOpen returns a copy of the open interval, or nil when every
// interval is closed. More than one open interval means the log was
// corrupted outside this process; in that case no interval is returned,
// because picking one would silently rewrite history.
func (l *Log) FindOpen() (*Interval, error) {
	var open *Interval
	for i := range l.intervals {
		if !l.intervals[i].Open() {
			continue
		}
		if open != nil {
			return nil, NewInvariantViolation("log holds more than one open interval")
		}
		iv := l.intervals[i]
		open = &iv
	}
	return open, nil
}

// CloseOpen closes the open interval at the given end and returns the
// closed copy. Fails with NoActiveTask when every interval is closed
// and with InvalidDuration when end precedes the open interval's start.
func (l *Log) CloseOpen(end time.Time) (Interval, error) {
	open, err := l.FindOpen()
	if err != nil {
		return Interval{}, err
	}
	if open == nil {
		return Interval{}, NewNoActiveTask()
	}
	if end.Before(open.Start) {
		return Interval{}, NewInvalidDuration("stop time %s precedes session start %s",
			end.Format(time.RFC3339), open.Start.Format(time.RFC3339))
	}
	for i := range l.intervals {
		if l.intervals[i].Open() {
			l.intervals[i] = l.intervals[i].WithEnd(end)
			return l.intervals[i], nil
		}
	}
	return Interval{}, NewNoActiveTask()
}

// ForDay returns copies of the intervals whose start falls on the given
// day, in log order. With monotonic starts, log order is start order.
func (l *Log) ForDay(day Day, dayStart time.Duration) []Interval {
	var out []Interval
	for _, iv := range l.intervals {
		if DayOf(iv.Start, dayStart) == day {
			out = append(out, iv)
		}
	}
	return out
}

// HasTask reports whether any interval records the given task name.
func (l *Log) HasTask(name string) bool {
	name = CanonicalName(name)
	for _, iv := range l.intervals {
		if iv.Task == name {
			return true
		}
	}
	return false
}

// LastClosed returns a copy of the closed interval with the latest end,
// or nil when no interval has been closed yet. Ties on the end instant
// go to the later log position.
func (l *Log) LastClosed() *Interval {
	var last *Interval
	for i := range l.intervals {
		iv := l.intervals[i]
		if iv.Open() {
			continue
		}
		if last == nil || !iv.End.Before(last.End) {
			last = &iv
		}
	}
	return last
}

// TaskNames returns the distinct task names in first-appearance order.
func (l *Log) TaskNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, iv := range l.intervals {
		if !seen[iv.Task] {
			seen[iv.Task] = true
			names = append(names, iv.Task)
		}
	}
	return names
}

// RenameTask rewrites every interval of oldName, open ones included, to
// carry newName. Returns the number of rewritten intervals; renaming a
// name that never appears is a no-op returning zero.
func (l *Log) RenameTask(oldName, newName string) int {
	oldName = CanonicalName(oldName)
	count := 0
	for i := range l.intervals {
		if l.intervals[i].Task == oldName {
			l.intervals[i] = l.intervals[i].WithTask(newName)
			count++
		}
	}
	return count
}

// DeleteTask removes every interval of the given task, open ones
// included. Returns the number of removed intervals; deleting a name
// that never appears is a no-op returning zero.
func (l *Log) DeleteTask(name string) int {
	name = CanonicalName(name)
	kept := l.intervals[:0]
	count := 0
	for _, iv := range l.intervals {
		if iv.Task == name {
			count++
			continue
		}
		kept = append(kept, iv)
	}
	l.intervals = kept
	return count
}

// Equal reports whether two logs hold equal intervals in the same order.
func (l *Log) Equal(other *Log) bool {
	if len(l.intervals) != len(other.intervals) {
		return false
	}
	for i := range l.intervals {
		if !l.intervals[i].Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}
