package task

import (
	"fmt"
	"time"
)

// dayFormat is the wire and display format for calendar days.
const dayFormat = "2006-01-02"

// Day identifies a local calendar date. It carries no location and no
// wall-clock component; two instants belong to the same Day when they
// fall between the same pair of day boundaries.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf assigns an instant to a Day. dayStart shifts the day boundary
// forward from midnight: with a dayStart of 4h30m, 01:30 still belongs
// to the previous calendar date. A zero dayStart gives plain calendar
// days.
func DayOf(t time.Time, dayStart time.Duration) Day {
	year, month, day := t.Add(-dayStart).Date()
	return Day{Year: year, Month: month, Day: day}
}

// ParseDay parses a day in YYYY-MM-DD form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: expected YYYY-MM-DD", s)
	}
	year, month, day := t.Date()
	return Day{Year: year, Month: month, Day: day}, nil
}

// ParseDayStart parses a day boundary in HH:MM form into an offset from
// midnight.
func ParseDayStart(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse day start %q: expected HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// String renders the day in YYYY-MM-DD form.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the day n calendar days later. Negative n moves
// backwards.
func (d Day) AddDays(n int) Day {
	year, month, day := d.asTime().AddDate(0, 0, n).Date()
	return Day{Year: year, Month: month, Day: day}
}

// Before reports whether d falls strictly before other.
func (d Day) Before(other Day) bool {
	return d.asTime().Before(other.asTime())
}

// After reports whether d falls strictly after other.
func (d Day) After(other Day) bool {
	return other.Before(d)
}

// asTime pins the day to midnight UTC for arithmetic. The location is
// irrelevant as long as every conversion uses the same one.
func (d Day) asTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
