// Package engine implements the task session state machine.
//
// The engine derives everything from the interval log it wraps. It has
// exactly two states: idle (no open interval) and running (one open
// interval). There is no session state of its own to drift out of sync
// with the log.
//
// Operation flow per invocation:
//  1. The command layer loads the log and hands it to New.
//  2. One operation runs. Validation happens before any mutation, so a
//     failed operation leaves the log exactly as it was.
//  3. The command layer persists the log, but only when the operation
//     succeeded.
//
// Time is always an explicit parameter. The engine never reads the wall
// clock, which keeps every transition deterministic and directly
// testable: the same log and the same instants always produce the same
// result.
package engine
