package progress

import (
	"time"

	"github.com/akarlsen/cadence/internal/domain"
)

// All calendar arithmetic operates on midnight-UTC days. Period windows
// are inclusive date ranges; the naive "next window start" produced by
// NextPeriodStart is converted to an inclusive end by subtracting one day.

// MidnightUTC truncates a timestamp to 00:00:00 UTC on its calendar day.
// Every date entering window arithmetic passes through here first so that
// time-of-day and timezone offsets cannot shift period boundaries.
func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NextPeriodStart advances a day by exactly one period unit.
func NextPeriodStart(period domain.Period, day time.Time) time.Time {
	switch period {
	case domain.PeriodDaily:
		return day.AddDate(0, 0, 1)
	case domain.PeriodWeekly:
		return day.AddDate(0, 0, 7)
	case domain.PeriodMonthly:
		return addMonthsClamped(day, 1)
	}
	return day
}

// EndDateForPeriods applies the period unit n times to start in a single
// step (n days, n weeks, or n calendar months) and returns the exclusive
// boundary. Callers subtract one day for the inclusive end date of the
// last window.
func EndDateForPeriods(start time.Time, period domain.Period, n int) time.Time {
	switch period {
	case domain.PeriodDaily:
		return start.AddDate(0, 0, n)
	case domain.PeriodWeekly:
		return start.AddDate(0, 0, 7*n)
	case domain.PeriodMonthly:
		return addMonthsClamped(start, n)
	}
	return start
}

// addMonthsClamped adds n calendar months, clamping the day-of-month to
// the target month's length: Jan 31 + 1 month is the last day of
// February, not March 2nd. time.AddDate would normalize the overflow.
func addMonthsClamped(day time.Time, n int) time.Time {
	year, month, dom := day.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(first.Year(), first.Month()); dom > last {
		dom = last
	}
	return time.Date(first.Year(), first.Month(), dom, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
