package analytics

import "time"

const DateLayout = "2006-01-02"

// Day strips the time of day. The civil date is taken in t's own
// location and returned as UTC midnight, so values from the database
// (DATE columns arrive as UTC) and from the local clock compare equal.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
