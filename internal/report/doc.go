// Package report aggregates logged intervals into per-day summaries.
//
// Aggregation is pure and read-only: a Summary is a function of the
// log, the requested day, the day-start offset, and an explicit "now"
// used to measure the open interval. Rendering the summary for humans
// lives elsewhere; this package computes numbers and ordering only.
package report
