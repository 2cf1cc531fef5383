package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewPeriodWindowNormalizesToSunday(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"already sunday", date(2025, time.October, 19), date(2025, time.October, 19)},
		{"monday", date(2025, time.October, 20), date(2025, time.October, 19)},
		{"wednesday with time of day", time.Date(2025, time.October, 22, 15, 42, 7, 0, time.Local), date(2025, time.October, 19)},
		{"saturday", date(2025, time.October, 25), date(2025, time.October, 19)},
		{"across month boundary", date(2025, time.November, 1), date(2025, time.October, 26)},
		{"across year boundary", date(2026, time.January, 2), date(2025, time.December, 28)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewPeriodWindow(tc.input)
			assert.Equal(t, tc.expected, w.Start)
			assert.Equal(t, time.Sunday, w.Start.Weekday())
			assert.Equal(t, 0, w.Start.Hour())
		})
	}
}

func TestNewPeriodWindowAlwaysSunday(t *testing.T) {
	// Sweep a couple of months of anchor dates
	for d := date(2025, time.September, 1); d.Before(date(2025, time.November, 1)); d = d.AddDate(0, 0, 1) {
		w := NewPeriodWindow(d)
		assert.Equal(t, time.Sunday, w.Start.Weekday(), "anchor %s", d.Format("2006-01-02"))
		assert.False(t, w.Start.After(d))
	}
}

func TestAdvancedRoundTrip(t *testing.T) {
	original := NewPeriodWindow(date(2025, time.October, 22))

	forward := original.Advanced(1)
	assert.Equal(t, original.Start.AddDate(0, 0, 14), forward.Start)

	back := forward.Advanced(-1)
	assert.Equal(t, original.Start, back.Start)
	assert.Equal(t, time.Sunday, back.Start.Weekday())
}

func TestContains(t *testing.T) {
	w := NewPeriodWindow(date(2025, time.October, 20)) // window starts Sun Oct 19

	assert.True(t, w.Contains(date(2025, time.October, 19)))
	assert.True(t, w.Contains(date(2025, time.November, 1)))             // day 14
	assert.True(t, w.Contains(time.Date(2025, time.November, 1, 23, 59, 0, 0, time.Local))) // day-of matters, not time
	assert.False(t, w.Contains(date(2025, time.November, 2)))            // exclusive end
	assert.False(t, w.Contains(date(2025, time.October, 18)))            // before start
}

func TestDays(t *testing.T) {
	w := NewPeriodWindow(date(2025, time.October, 19))
	days := w.Days()

	assert.Len(t, days, 14)
	assert.Equal(t, w.Start, days[0])
	assert.Equal(t, date(2025, time.November, 1), days[13])
	for _, d := range days {
		assert.True(t, w.Contains(d))
	}
}

func TestLabel(t *testing.T) {
	w := PeriodWindow{Start: date(2025, time.October, 19)}
	assert.Equal(t, "Oct 19 - Nov 1, 2025", w.Label())
}
