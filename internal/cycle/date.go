package cycle

import "time"

// DateLayout is the wire and map-key format for calendar dates.
const DateLayout = "2006-01-02"

// DateOnly returns the calendar day of t as a UTC midnight instant.
// The wall-clock date of t in its own location is kept.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a calendar date by n days.
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// DayKey formats the calendar day of t for use as a set key.
func DayKey(t time.Time) string {
	return DateOnly(t).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
