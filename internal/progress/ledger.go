package progress

import "time"

// Entry is a dated duration from the activity ledger, prefetched once per
// habit so window generation filters in memory instead of issuing one
// range query per window.
type Entry struct {
	Date     time.Time
	Duration int
}

// SumRange totals the entries whose date falls within [from, to]
// inclusive.
func SumRange(entries []Entry, from, to time.Time) int {
	var total int
	for _, e := range entries {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		total += e.Duration
	}
	return total
}
