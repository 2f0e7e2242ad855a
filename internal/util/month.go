package util

import "time"

// PreviousMonth returns the year and month for the month before the given one
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// MonthsAgo returns the year and month of the calendar month n months before
// ref's month. n may be 0 (ref's own month).
func MonthsAgo(ref time.Time, n int) (int, time.Month) {
	// Normalize via time.Date on day 1 so day-of-month overflow can't shift the result
	t := time.Date(ref.Year(), ref.Month()-time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// MonthLabel formats a year/month pair for display, e.g. "Jan 2026"
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// SameMonth reports whether t falls in the given calendar year and month,
// using t's own year/month fields
func SameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
