// Package report implements the financial reporting core: date-range
// bucketing of work-order records, per-service aggregation with grand
// totals, and CSV rendering in the four admin report shapes.
package report

import (
	"time"

	"home-services-backend/internal/database/models"
)

// Range selects the reporting period, computed relative to "now" at call
// time rather than frozen at load time.
type Range string

const (
	RangeCurrentMonth   Range = "current-month"
	RangeLastMonth      Range = "last-month"
	RangeCurrentQuarter Range = "current-quarter"
	RangeCurrentYear    Range = "current-year"
	RangeCustom         Range = "custom"
)

// RangeSpec is a reporting period; Start/End are only read for RangeCustom.
type RangeSpec struct {
	Range Range
	Start *time.Time
	End   *time.Time
}

// ValidRange reports whether r names a known reporting range.
func ValidRange(r Range) bool {
	switch r {
	case RangeCurrentMonth, RangeLastMonth, RangeCurrentQuarter, RangeCurrentYear, RangeCustom:
		return true
	}
	return false
}

// Bounds resolves the spec to inclusive [start, end] calendar-day bounds
// relative to now. The second return is false when the spec does not
// constrain the records (unknown range, or custom with missing bounds —
// a permissive fallback, not an error).
func (s RangeSpec) Bounds(now time.Time) (time.Time, time.Time, bool) {
	year, month, _ := now.Date()
	loc := now.Location()

	switch s.Range {
	case RangeCurrentMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, -1)
		return start, end, true
	case RangeLastMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
		end := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1)
		return start, end, true
	case RangeCurrentQuarter:
		quarter := (int(month) - 1) / 3
		start := time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 3, -1)
		return start, end, true
	case RangeCurrentYear:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
		return start, end, true
	case RangeCustom:
		if s.Start == nil || s.End == nil {
			return time.Time{}, time.Time{}, false
		}
		return *s.Start, *s.End, true
	}
	return time.Time{}, time.Time{}, false
}

// FilterByDateRange returns the records whose date falls inside the spec's
// bounds resolved against now. An unconstrained spec returns the input
// unchanged.
func FilterByDateRange(records []models.WorkOrder, spec RangeSpec, now time.Time) []models.WorkOrder {
	start, end, ok := spec.Bounds(now)
	if !ok {
		return records
	}
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	out := make([]models.WorkOrder, 0, len(records))
	for _, r := range records {
		day := truncateToDay(r.Date)
		if !day.Before(startDay) && !day.After(endDay) {
			out = append(out, r)
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
