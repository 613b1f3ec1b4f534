package store

import (
	"strings"
	"time"

	"github.com/roach88/tasklog/internal/task"
)

// record is the wire form of one interval. Timestamps are Unix seconds;
// a missing end marks the open interval.
type record struct {
	Task  string `json:"task"`
	Start int64  `json:"start"`
	End   *int64 `json:"end,omitempty"`
}

// toRecord converts an interval to its wire form.
func toRecord(iv task.Interval) record {
	rec := record{Task: iv.Task, Start: iv.Start.Unix()}
	if !iv.Open() {
		end := iv.End.Unix()
		rec.End = &end
	}
	return rec
}

// interval converts a decoded record back to an interval, enforcing the
// structural rules a well-formed record obeys. line is the 1-based
// record position, carried into corrupt-log errors.
func (r record) interval(line int) (task.Interval, error) {
	if strings.TrimSpace(r.Task) == "" {
		return task.Interval{}, task.NewCorruptLog(line, "record has an empty task name")
	}
	start := time.Unix(r.Start, 0)
	if r.End == nil {
		return task.NewOpenInterval(r.Task, start), nil
	}
	end := time.Unix(*r.End, 0)
	if end.Before(start) {
		return task.Interval{}, task.NewCorruptLog(line, "interval ends before it starts")
	}
	iv, err := task.NewClosedInterval(r.Task, start, end)
	if err != nil {
		return task.Interval{}, task.NewCorruptLog(line, "%v", err)
	}
	return iv, nil
}
