// Package analysis derives conflicts, idle gaps, utilization and suggestions
// from a list of time slots. Everything here is a pure function of its input.
package analysis

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the number of wall-clock minutes in a calendar day.
	MinutesPerDay = 24 * 60

	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// ParseClock converts an HH:mm wall-clock string to minutes after midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDate parses a YYYY-MM-DD calendar day as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// Duration returns the minutes from start to end. An end earlier than start
// falls on the next day. Malformed input yields 0.
func Duration(start, end string) int {
	s, e, ok := span(start, end)
	if !ok {
		return 0
	}
	return e - s
}

// span resolves start/end into minutes with the midnight wrap applied,
// so the returned end is never before the returned start.
func span(start, end string) (int, int, bool) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, 0, false
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, 0, false
	}
	if e < s {
		e += MinutesPerDay
	}
	return s, e, true
}

// FormatClock renders an HH:mm string as "h:mm AM". Malformed input is
// returned unchanged.
func FormatClock(s string) string {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

// FormatDuration renders minutes as "45 min", "1 hour" or "2 hours 15 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}

	if rest == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}
	return fmt.Sprintf("%d %s %d min", hours, unit, rest)
}

// MinutesToClock converts minutes after midnight back to HH:mm, wrapping
// values outside a single day.
func MinutesToClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
