package progress

// Streaks computes the current and best streak over period windows given
// in chronological (start date ascending) order. A streak is a run of
// consecutive completed windows; it resets to zero at every incomplete
// window. The current streak is the trailing run ending at the most
// recent window, which is exactly the running counter after the scan: it
// is zero whenever the last window broke the streak.
func Streaks(completed []bool) (current, best int) {
	var running int
	for _, ok := range completed {
		if ok {
			running++
			if running > best {
				best = running
			}
		} else {
			running = 0
		}
	}
	return running, best
}
