// Package schedule implements the biweekly availability calendar model:
// a 14-day rolling window anchored to a Sunday, filtered views over
// technician time-blocks, and clock-time helpers shared by the admin
// timesheet and employee availability pages.
package schedule

import (
	"fmt"
	"time"
)

// PeriodDays is the length of the scheduling window.
const PeriodDays = 14

// PeriodWindow is a half-open 14-day date range [Start, Start+14d).
// Start is always normalized to a Sunday at midnight local time.
type PeriodWindow struct {
	Start time.Time
}

// NewPeriodWindow normalizes t to the prior (or same) Sunday at 00:00
// local time and returns the window starting there.
func NewPeriodWindow(t time.Time) PeriodWindow {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return PeriodWindow{Start: midnight.AddDate(0, 0, -int(midnight.Weekday()))}
}

// End returns the exclusive end of the window.
func (w PeriodWindow) End() time.Time {
	return w.Start.AddDate(0, 0, PeriodDays)
}

// Advanced returns the window shifted by direction*14 days. Advancing by
// +1 and then -1 restores the original window exactly.
func (w PeriodWindow) Advanced(direction int) PeriodWindow {
	return PeriodWindow{Start: w.Start.AddDate(0, 0, direction*PeriodDays)}
}

// Contains reports whether the calendar day of d falls inside the window.
func (w PeriodWindow) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, w.Start.Location())
	return !day.Before(w.Start) && day.Before(w.End())
}

// Days returns the 14 calendar days of the window in order.
func (w PeriodWindow) Days() []time.Time {
	days := make([]time.Time, 0, PeriodDays)
	for i := 0; i < PeriodDays; i++ {
		days = append(days, w.Start.AddDate(0, 0, i))
	}
	return days
}

// Label renders the window for display, e.g. "Oct 20 - Nov 2, 2025".
// The end label uses the last day inside the window, not the exclusive end.
func (w PeriodWindow) Label() string {
	last := w.Start.AddDate(0, 0, PeriodDays-1)
	return fmt.Sprintf("%s - %s", w.Start.Format("Jan 2"), last.Format("Jan 2, 2006"))
}
