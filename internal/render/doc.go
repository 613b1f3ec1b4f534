// Package render formats report summaries for terminal display.
//
// The renderer owns presentation only: column widths, duration and
// percentage formatting, and the highlight applied to a running task's
// row. Aggregation lives in the report package, and the JSON output
// mode bypasses this package entirely.
package render
