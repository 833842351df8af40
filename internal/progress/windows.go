package progress

import (
	"time"

	"github.com/akarlsen/cadence/internal/domain"
)

// Window is one generated period window before persistence: the inclusive
// date range plus the duration accumulated from the ledger at generation
// time.
type Window struct {
	Ord               int
	StartDate         time.Time
	EndDate           time.Time
	CompletedDuration int
	Completed         bool
}

// HabitEndDate derives a habit's inclusive end date: the period unit
// applied NumberOfPeriods times to the start, minus one day.
func HabitEndDate(start time.Time, period domain.Period, numberOfPeriods int) time.Time {
	return EndDateForPeriods(start, period, numberOfPeriods).AddDate(0, 0, -1)
}

// BuildWindows partitions [start, end] into period windows, summing the
// prefetched ledger entries into each. Every boundary is anchored on the
// habit's start date: window k spans [start+k-1 periods, start+k periods)
// as an inclusive date range. Anchoring matters for monthly habits that
// start on the 29th-31st, where stepping from a clamped window end would
// drift the later boundaries off the habit's end date.
func BuildWindows(start, end time.Time, period domain.Period, goalDuration int, entries []Entry) []Window {
	var windows []Window
	for ord := 1; ; ord++ {
		windowStart := EndDateForPeriods(start, period, ord-1)
		if windowStart.After(end) {
			break
		}
		windowEnd := EndDateForPeriods(start, period, ord).AddDate(0, 0, -1)
		if windowEnd.After(end) {
			windowEnd = end
		}
		done := SumRange(entries, windowStart, windowEnd)
		windows = append(windows, Window{
			Ord:               ord,
			StartDate:         windowStart,
			EndDate:           windowEnd,
			CompletedDuration: done,
			Completed:         done >= goalDuration,
		})
	}
	return windows
}

// WindowStreaks maps generated windows onto the streak scan.
func WindowStreaks(windows []Window) (current, best int) {
	completed := make([]bool, len(windows))
	for i, w := range windows {
		completed[i] = w.Completed
	}
	return Streaks(completed)
}

// ProgressStreaks maps persisted progress rows (ordered ascending) onto
// the streak scan.
func ProgressStreaks(rows []*domain.HabitProgress) (current, best int) {
	completed := make([]bool, len(rows))
	for i, r := range rows {
		completed[i] = r.Completed
	}
	return Streaks(completed)
}
