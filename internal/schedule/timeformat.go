package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as 24-hour "HH:MM".
func FormatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// FormatMinuteOfDay renders minutes from midnight as 12-hour "H:MM AM/PM".
// Noon is "12:00 PM" and midnight is "12:00 AM".
func FormatMinuteOfDay(minuteOfDay int) string {
	hour := minuteOfDay / 60
	minute := minuteOfDay % 60

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, ampm)
}

// FormatTimeRange renders a block's span, e.g. "9:00 AM - 5:00 PM".
func FormatTimeRange(startMinute, endMinute int) string {
	return FormatMinuteOfDay(startMinute) + " - " + FormatMinuteOfDay(endMinute)
}
