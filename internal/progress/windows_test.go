package progress

import (
	"testing"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitEndDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		period domain.Period
		n      int
		want   time.Time
	}{
		{"three daily periods", day(2024, time.January, 1), domain.PeriodDaily, 3, day(2024, time.January, 3)},
		{"two weekly periods", day(2024, time.January, 1), domain.PeriodWeekly, 2, day(2024, time.January, 14)},
		{"two monthly periods", day(2024, time.January, 15), domain.PeriodMonthly, 2, day(2024, time.March, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HabitEndDate(tt.start, tt.period, tt.n))
		})
	}
}

func TestBuildWindows_DailyTiling(t *testing.T) {
	start := day(2024, time.January, 1)
	end := HabitEndDate(start, domain.PeriodDaily, 3)

	entries := []Entry{
		{Date: day(2024, time.January, 1), Duration: 20},
		{Date: day(2024, time.January, 1), Duration: 15},
		{Date: day(2024, time.January, 3), Duration: 30},
		{Date: day(2024, time.January, 4), Duration: 99}, // past the end
	}

	windows := BuildWindows(start, end, domain.PeriodDaily, 30, entries)
	require.Len(t, windows, 3)

	assert.Equal(t, day(2024, time.January, 1), windows[0].StartDate)
	assert.Equal(t, day(2024, time.January, 1), windows[0].EndDate)
	assert.Equal(t, 35, windows[0].CompletedDuration)
	assert.True(t, windows[0].Completed)

	assert.Equal(t, 0, windows[1].CompletedDuration)
	assert.False(t, windows[1].Completed)

	assert.Equal(t, 30, windows[2].CompletedDuration)
	assert.True(t, windows[2].Completed)

	for i, w := range windows {
		assert.Equal(t, i+1, w.Ord)
		if i > 0 {
			assert.Equal(t, windows[i-1].EndDate.AddDate(0, 0, 1), w.StartDate, "windows must be contiguous")
		}
	}
	assert.Equal(t, end, windows[len(windows)-1].EndDate)
}

func TestBuildWindows_WeeklyBoundaries(t *testing.T) {
	start := day(2024, time.January, 1)
	end := HabitEndDate(start, domain.PeriodWeekly, 2)

	windows := BuildWindows(start, end, domain.PeriodWeekly, 120, nil)
	require.Len(t, windows, 2)

	assert.Equal(t, day(2024, time.January, 1), windows[0].StartDate)
	assert.Equal(t, day(2024, time.January, 7), windows[0].EndDate)
	assert.Equal(t, day(2024, time.January, 8), windows[1].StartDate)
	assert.Equal(t, day(2024, time.January, 14), windows[1].EndDate)
}

func TestBuildWindows_MonthlyBoundaries(t *testing.T) {
	start := day(2024, time.January, 15)
	end := HabitEndDate(start, domain.PeriodMonthly, 2)

	windows := BuildWindows(start, end, domain.PeriodMonthly, 600, nil)
	require.Len(t, windows, 2)

	assert.Equal(t, day(2024, time.January, 15), windows[0].StartDate)
	assert.Equal(t, day(2024, time.February, 14), windows[0].EndDate)
	assert.Equal(t, day(2024, time.February, 15), windows[1].StartDate)
	assert.Equal(t, day(2024, time.March, 14), windows[1].EndDate)
}

func TestBuildWindows_MonthEndStartKeepsAnchoredBoundaries(t *testing.T) {
	start := day(2024, time.January, 31)
	end := HabitEndDate(start, domain.PeriodMonthly, 2)
	require.Equal(t, day(2024, time.March, 30), end)

	entries := []Entry{
		{Date: day(2024, time.April, 15), Duration: 500}, // after the habit ends
	}

	windows := BuildWindows(start, end, domain.PeriodMonthly, 600, entries)
	require.Len(t, windows, 2, "window count must equal the period count")

	assert.Equal(t, day(2024, time.January, 31), windows[0].StartDate)
	assert.Equal(t, day(2024, time.February, 28), windows[0].EndDate)
	assert.Equal(t, day(2024, time.February, 29), windows[1].StartDate)
	assert.Equal(t, day(2024, time.March, 30), windows[1].EndDate, "last window ends on the habit end date")

	for _, w := range windows {
		assert.Zero(t, w.CompletedDuration, "entries past the habit end fall in no window")
	}
}

func TestBuildWindows_MonthEndStartAcrossShortFebruary(t *testing.T) {
	start := day(2023, time.January, 31)
	end := HabitEndDate(start, domain.PeriodMonthly, 3)
	require.Equal(t, day(2023, time.April, 29), end)

	windows := BuildWindows(start, end, domain.PeriodMonthly, 600, nil)
	require.Len(t, windows, 3)

	assert.Equal(t, day(2023, time.February, 27), windows[0].EndDate)
	assert.Equal(t, day(2023, time.February, 28), windows[1].StartDate)
	assert.Equal(t, day(2023, time.March, 30), windows[1].EndDate)
	assert.Equal(t, day(2023, time.March, 31), windows[2].StartDate, "boundaries re-anchor on the start's day-of-month")
	assert.Equal(t, end, windows[2].EndDate)
}

func TestBuildWindows_ZeroGoalIsCompleteImmediately(t *testing.T) {
	start := day(2024, time.January, 1)
	windows := BuildWindows(start, HabitEndDate(start, domain.PeriodDaily, 2), domain.PeriodDaily, 0, nil)
	require.Len(t, windows, 2)
	for _, w := range windows {
		assert.True(t, w.Completed)
	}
}

func TestSumRange_InclusiveBounds(t *testing.T) {
	entries := []Entry{
		{Date: day(2024, time.January, 1), Duration: 10},
		{Date: day(2024, time.January, 5), Duration: 20},
		{Date: day(2024, time.January, 7), Duration: 40},
		{Date: day(2024, time.January, 8), Duration: 80},
	}

	assert.Equal(t, 70, SumRange(entries, day(2024, time.January, 1), day(2024, time.January, 7)))
	assert.Equal(t, 60, SumRange(entries, day(2024, time.January, 5), day(2024, time.January, 7)))
	assert.Equal(t, 0, SumRange(entries, day(2024, time.February, 1), day(2024, time.February, 28)))
}

func TestWindowStreaks(t *testing.T) {
	windows := []Window{
		{Completed: true},
		{Completed: true},
		{Completed: false},
		{Completed: true},
	}
	current, best := WindowStreaks(windows)
	assert.Equal(t, 1, current)
	assert.Equal(t, 2, best)
}
