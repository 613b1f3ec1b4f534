package store

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/roach88/tasklog/internal/task"
)

// maxLineBytes bounds a single log line. Task names are short; a line
// anywhere near this size is garbage, not data.
const maxLineBytes = 1 << 20

// Read decodes a JSON Lines interval log. Blank lines are ignored.
//
// Structural rules are enforced here, once, so everything downstream
// can trust the log:
//   - every record decodes and satisfies end >= start
//   - each start is at or after the previous record's end
//   - an open interval is only valid as the final record, which also
//     bounds the log to at most one open interval
func Read(r io.Reader) (*task.Log, error) {
	log := task.NewLog()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	openLine := 0
	var prevEnd *task.Interval
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if openLine > 0 {
			return nil, task.NewInvariantViolation(
				"open interval on line %d is not the last record", openLine)
		}

		var rec record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, task.NewCorruptLog(line, "invalid JSON: %v", err)
		}
		iv, err := rec.interval(line)
		if err != nil {
			return nil, err
		}
		if prevEnd != nil && iv.Start.Before(prevEnd.End) {
			return nil, task.NewCorruptLog(line, "interval overlaps the previous record")
		}
		if iv.Open() {
			openLine = line
		} else {
			prev := iv
			prevEnd = &prev
		}
		log.Append(iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, task.NewIOFailure("read log", err)
	}
	return log, nil
}
