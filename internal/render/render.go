package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/tasklog/internal/report"
)

// minNameWidth keeps the name column at least as wide as the "Total"
// label in the footer.
const minNameWidth = 5

// Renderer renders report summaries as tables.
type Renderer struct {
	highlight lipgloss.Style
	styled    bool
}

// New returns a renderer that highlights the running task's row in
// bold green.
func New() *Renderer {
	return &Renderer{
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		styled:    true,
	}
}

// NewPlain returns a renderer with highlighting disabled. Output is
// byte-deterministic regardless of the terminal, which golden tests
// and piped output rely on.
func NewPlain() *Renderer {
	return &Renderer{}
}

// Table renders one day's summary:
//
//	  2025-03-14
//	    coding  | 00:45 |  25.0%
//	    meeting | 00:30 |  16.7%
//	    review  | 01:45 |  58.3%
//	    ========================
//	    Total   | 03:00 | 100.0%
//
// Rows keep the summary's order. The name column widens to the longest
// task name, the separator spans the full row width, and the running
// task's row is highlighted when styling is on.
func (r *Renderer) Table(s report.Summary) string {
	width := minNameWidth
	for _, row := range s.Rows {
		if w := lipgloss.Width(row.Task); w > width {
			width = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s \n", s.Day)
	for _, row := range s.Rows {
		line := fmt.Sprintf("    %s | %s | %5.1f%%",
			pad(row.Task, width), FormatDuration(row.Duration), percent(row.Duration, s.Total))
		if row.Running && r.styled {
			line = r.highlight.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "    %s\n", strings.Repeat("=", width+17))
	fmt.Fprintf(&b, "    %s | %s | 100.0%%\n", pad("Total", width), FormatDuration(s.Total))
	return b.String()
}

// FormatDuration renders a duration as HH:MM. Durations are floored to
// whole minutes and hours are not wrapped, so a 26-hour total renders
// as 26:05 rather than rolling over.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// pad left-aligns a name in a field of the given display width.
func pad(name string, width int) string {
	if gap := width - lipgloss.Width(name); gap > 0 {
		return name + strings.Repeat(" ", gap)
	}
	return name
}

// percent returns part's share of total. A zero total yields zero, not
// NaN, so a day of zero-length intervals still renders.
func percent(part, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
