// Package task provides the core value types for the tasklog time log.
//
// This package contains type definitions and log primitives only. All other
// internal packages import task; task imports nothing internal. This keeps
// task the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - A task name IS the task identity. Names are NFC normalized at every
//     construction and matching boundary, so composed and decomposed
//     spellings of the same visible string are one task.
//   - The current task is never stored. It is derived from the single open
//     interval, which is always the last record in the log.
//   - Closed intervals always satisfy end >= start.
//   - Nothing in this package prints, logs, or reads the wall clock. Time
//     is always an explicit parameter and errors carry all context.
package task
