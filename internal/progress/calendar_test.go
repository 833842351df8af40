package progress

import (
	"testing"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, time.March, 15, 3, 45, 12, 0, loc)

	got := MidnightUTC(in)

	// 03:45 UTC+5 is the previous day 22:45 UTC.
	assert.Equal(t, day(2024, time.March, 14), got)
}

func TestNextPeriodStart(t *testing.T) {
	tests := []struct {
		name   string
		period domain.Period
		in     time.Time
		want   time.Time
	}{
		{"daily", domain.PeriodDaily, day(2024, time.January, 1), day(2024, time.January, 2)},
		{"daily across month end", domain.PeriodDaily, day(2024, time.January, 31), day(2024, time.February, 1)},
		{"weekly", domain.PeriodWeekly, day(2024, time.January, 1), day(2024, time.January, 8)},
		{"monthly mid-month", domain.PeriodMonthly, day(2024, time.January, 15), day(2024, time.February, 15)},
		{"monthly clamps into leap february", domain.PeriodMonthly, day(2024, time.January, 31), day(2024, time.February, 29)},
		{"monthly clamps into short february", domain.PeriodMonthly, day(2023, time.January, 31), day(2023, time.February, 28)},
		{"monthly clamps 31st into 30-day month", domain.PeriodMonthly, day(2024, time.March, 31), day(2024, time.April, 30)},
		{"monthly across year end", domain.PeriodMonthly, day(2023, time.December, 15), day(2024, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPeriodStart(tt.period, tt.in))
		})
	}
}

func TestEndDateForPeriods(t *testing.T) {
	tests := []struct {
		name   string
		period domain.Period
		start  time.Time
		n      int
		want   time.Time
	}{
		{"three days", domain.PeriodDaily, day(2024, time.January, 1), 3, day(2024, time.January, 4)},
		{"two weeks", domain.PeriodWeekly, day(2024, time.January, 1), 2, day(2024, time.January, 15)},
		{"two months", domain.PeriodMonthly, day(2024, time.January, 15), 2, day(2024, time.March, 15)},
		// Clamping applies to the final month only, so Jan 31 + 2 months
		// lands back on the 31st, not on February's clamp.
		{"two months from the 31st", domain.PeriodMonthly, day(2024, time.January, 31), 2, day(2024, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndDateForPeriods(tt.start, tt.period, tt.n))
		})
	}
}
