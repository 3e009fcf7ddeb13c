package schema

import "time"

// DaysIn returns the number of days in the given calendar month,
// accounting for leap years.
func DaysIn(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfYear returns midnight UTC on January 1 of the given year.
func StartOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfDay expands a bare date to the last representable millisecond of
// that day, matching the T23:59:59.999Z convention of the data feed.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999e6, time.UTC)
}

// StartOfDay truncates a timestamp to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
