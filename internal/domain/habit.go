package domain

import (
	"strings"
	"time"
)

// Habit is a recurring goal: a goal duration repeated over a fixed number
// of daily, weekly or monthly periods. EndDate is derived from StartDate
// and the period count at creation and never changes afterwards.
type Habit struct {
	ID              string
	UserID          string
	Name            string
	Description     string
	Color           string
	Period          Period
	NumberOfPeriods int
	StartDate       time.Time
	EndDate         time.Time
	GoalDuration    int
	CategoryID      string
	ProjectID       *string
	Completed       bool
	CurrentStreak   int
	BestStreak      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the invariants that do not depend on the derived end
// date. Date-range checks run in the service once the end date is known.
func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return ErrEmptyName
	}
	if !ValidPeriods[string(h.Period)] {
		return ErrInvalidPeriod
	}
	if h.NumberOfPeriods < MinHabitPeriods || h.NumberOfPeriods > MaxHabitPeriods {
		return ErrInvalidPeriodCount
	}
	if h.GoalDuration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// HabitProgress is one materialized period window of a habit. Windows for
// a habit are contiguous, non-overlapping, ordered by Ord ascending and
// together cover [habit.StartDate, habit.EndDate]. UserID and CategoryID
// are denormalized from the habit so the propagator can find affected
// windows without a join.
type HabitProgress struct {
	ID                string
	HabitID           string
	UserID            string
	CategoryID        string
	Ord               int
	StartDate         time.Time
	EndDate           time.Time
	GoalDuration      int
	CompletedDuration int
	Completed         bool
}

// Contains reports whether the given calendar day falls inside the
// window's inclusive date range.
func (p *HabitProgress) Contains(day time.Time) bool {
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}
