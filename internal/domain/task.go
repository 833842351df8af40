package domain

import (
	"strings"
	"time"
)

// Task is a single-period goal: the degenerate case of a habit with one
// window. The task row itself is the window, so CompletedDuration lives
// directly on it.
type Task struct {
	ID                string
	UserID            string
	Name              string
	Description       string
	Color             string
	StartDate         time.Time
	EndDate           time.Time
	GoalDuration      int
	CompletedDuration int
	Completed         bool
	CategoryID        string
	ProjectID         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.GoalDuration < 0 {
		return ErrNegativeDuration
	}
	if !t.StartDate.Before(t.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Contains reports whether the given calendar day falls inside the task's
// inclusive date range.
func (t *Task) Contains(day time.Time) bool {
	return !day.Before(t.StartDate) && !day.After(t.EndDate)
}
