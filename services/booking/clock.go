package booking

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// DateLayout is the calendar-date wire format used throughout the service.
// Dates in this format compare correctly as plain strings.
const DateLayout = "2006-01-02"

// ParseClock converts an "HH:MM" string into minutes since midnight (0-1439).
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes advances a time-of-day, wrapping within the day. Callers are
// responsible for rejecting results that cross midnight; office hours never
// produce one.
func AddMinutes(m, duration int) int {
	return ((m+duration)%minutesPerDay + minutesPerDay) % minutesPerDay
}

// ParseDate parses a DateLayout string at local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Weekday returns the weekday of a DateLayout string.
func Weekday(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// Midnight normalizes t to 00:00 in its own location. Calendar comparisons
// always go through this so time-of-day never skews a date verdict.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// minuteOfDay is t's time-of-day in minutes since midnight.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
