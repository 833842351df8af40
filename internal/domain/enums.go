package domain

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ValidPeriods is the canonical set of accepted period strings.
var ValidPeriods = map[string]bool{
	"daily": true, "weekly": true, "monthly": true,
}

// MinHabitPeriods and MaxHabitPeriods bound a habit's repeat count.
// A single-period goal is a Task, not a Habit.
const (
	MinHabitPeriods = 2
	MaxHabitPeriods = 90
)
