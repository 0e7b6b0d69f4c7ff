package schedule

import "time"

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clampedDate builds year-month-day, pulling day back to the month's last day when it does not exist.
func clampedDate(year int, month time.Month, day int) time.Time {
	// Normalize month overflow first (e.g. month 13 -> January of the next year).
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves t by n calendar months, keeping the day-of-month and clamping
// it to the last day of the target month. Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return clampedDate(y, m+time.Month(n), d)
}
