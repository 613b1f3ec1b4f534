package report

import (
	"time"

	"github.com/roach88/tasklog/internal/task"
)

// Row is one task's share of a day.
type Row struct {
	// Task is the task name.
	Task string

	// Duration is the summed time across every interval of the task
	// that started on the day.
	Duration time.Duration

	// Running reports whether the task's open interval contributed to
	// the duration, meaning the total is still growing.
	Running bool
}

// Summary is the aggregation of one day's intervals.
type Summary struct {
	// Day is the reported calendar day.
	Day task.Day

	// Rows holds one entry per task, ordered by each task's first
	// start within the day.
	Rows []Row

	// Total is the sum of all row durations.
	Total time.Duration
}

// Report aggregates the intervals that started on the given day.
//
// Durations for the same task sum across its intervals. An open
// interval is measured against now, so a task still running counts the
// time elapsed so far. Tasks appear in order of their first start
// within the day.
func Report(log *task.Log, day task.Day, dayStart time.Duration, now time.Time) Summary {
	summary := Summary{Day: day}
	index := make(map[string]int)
	for _, iv := range log.ForDay(day, dayStart) {
		i, seen := index[iv.Task]
		if !seen {
			i = len(summary.Rows)
			index[iv.Task] = i
			summary.Rows = append(summary.Rows, Row{Task: iv.Task})
		}
		d := iv.Duration(now)
		summary.Rows[i].Duration += d
		summary.Rows[i].Running = summary.Rows[i].Running || iv.Open()
		summary.Total += d
	}
	return summary
}

// List returns the distinct task names that started on the given day,
// ordered by first start. A thin derivative of Report for callers that
// only need the names.
func List(log *task.Log, day task.Day, dayStart time.Duration) []string {
	var names []string
	seen := make(map[string]bool)
	for _, iv := range log.ForDay(day, dayStart) {
		if !seen[iv.Task] {
			seen[iv.Task] = true
			names = append(names, iv.Task)
		}
	}
	return names
}
