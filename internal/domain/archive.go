package domain

import "time"

// ArchivedHabit is a denormalized, write-once snapshot of a habit taken
// when it is archived. CategoryName is inlined because the live category
// may later be renamed or the habit's rows deleted. Snapshots are never
// recomputed and can be deleted independently.
type ArchivedHabit struct {
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
	CategoryName    string
	Completed       bool
	CurrentStreak   int
	BestStreak      int
	ArchivedAt      time.Time
}

// ArchivedTask is the task counterpart of ArchivedHabit.
type ArchivedTask struct {
	ID                string
	UserID            string
	Name              string
	Description       string
	Color             string
	StartDate         time.Time
	EndDate           time.Time
	GoalDuration      int
	CompletedDuration int
	CategoryName      string
	Completed         bool
	ArchivedAt        time.Time
}
