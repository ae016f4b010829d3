package domain

import "time"

// UTCDate normalizes a time to midnight UTC. All simulation dates are
// compared at day precision.
func UTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths advances a date by n calendar months, preserving the day of month
// when possible and clamping to the last day of the target month otherwise
// (2025-01-31 plus one month is 2025-02-28). This is calendar-month
// arithmetic, not elapsed-days arithmetic: time.Time.AddDate would normalize
// Jan 31 + 1 month into March.
func AddMonths(t time.Time, n int) time.Time {
	t = UTCDate(t)
	year, month, day := t.Date()

	m := int(month) - 1 + n
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	targetMonth := time.Month(m + 1)

	if last := daysIn(year, targetMonth); day > last {
		day = last
	}
	return time.Date(year, targetMonth, day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
