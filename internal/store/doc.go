// Package store persists the interval log as a JSON Lines snapshot.
//
// The persistence model is read-fully, rewrite-atomically:
//   - Load reads the whole file into a task.Log; a missing file is a
//     first run and yields an empty log.
//   - Save serializes the whole log to a temporary file in the target
//     directory, syncs it, and renames it over the old file. A crash
//     mid-write never leaves a torn log behind.
//
// Wire format: one JSON object per line, in log order. Timestamps are
// Unix seconds and a missing "end" key marks the open interval.
//
//	{"task":"deep work","start":1753428600}
//	{"task":"deep work","start":1753428600,"end":1753431300}
//
// Load validates structure eagerly so the rest of the process can trust
// the log: undecodable or contradictory records fail with CorruptLog
// and the offending line number, and a log with an open interval
// anywhere but the final record fails with InvariantViolation.
package store
