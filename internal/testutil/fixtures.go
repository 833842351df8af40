package testutil

import (
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/google/uuid"
)

// TestUser is the user id all fixtures default to.
const TestUser = "user-1"

// Day builds a midnight-UTC calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Category fixtures

func NewTestCategory(name string) *domain.Category {
	return &domain.Category{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Activity options

type ActivityOption func(*domain.Activity)

func WithActivityUser(userID string) ActivityOption {
	return func(a *domain.Activity) {
		a.UserID = userID
	}
}

func WithNote(note string) ActivityOption {
	return func(a *domain.Activity) {
		a.Note = note
	}
}

func NewTestActivity(categoryID string, date time.Time, duration int, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:         uuid.New().String(),
		UserID:     TestUser,
		CategoryID: categoryID,
		Date:       date,
		Duration:   duration,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Habit options

type HabitOption func(*domain.Habit)

func WithHabitUser(userID string) HabitOption {
	return func(h *domain.Habit) {
		h.UserID = userID
	}
}

func WithPeriod(p domain.Period) HabitOption {
	return func(h *domain.Habit) {
		h.Period = p
	}
}

func WithNumberOfPeriods(n int) HabitOption {
	return func(h *domain.Habit) {
		h.NumberOfPeriods = n
	}
}

func WithGoalDuration(minutes int) HabitOption {
	return func(h *domain.Habit) {
		h.GoalDuration = minutes
	}
}

func WithStartDate(d time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.StartDate = d
	}
}

func WithHabitProject(projectID string) HabitOption {
	return func(h *domain.Habit) {
		h.ProjectID = &projectID
	}
}

// NewTestHabit builds a daily habit with three periods starting today.
// The end date is derived by the habit service at creation.
func NewTestHabit(categoryID, name string, opts ...HabitOption) *domain.Habit {
	h := &domain.Habit{
		ID:              uuid.New().String(),
		UserID:          TestUser,
		Name:            name,
		Color:           "#83a598",
		Period:          domain.PeriodDaily,
		NumberOfPeriods: 3,
		StartDate:       time.Now().UTC(),
		GoalDuration:    30,
		CategoryID:      categoryID,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Task options

type TaskOption func(*domain.Task)

func WithTaskUser(userID string) TaskOption {
	return func(t *domain.Task) {
		t.UserID = userID
	}
}

func WithTaskDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithTaskGoal(minutes int) TaskOption {
	return func(t *domain.Task) {
		t.GoalDuration = minutes
	}
}

func WithTaskProject(projectID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = &projectID
	}
}

func NewTestTask(categoryID, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.New().String(),
		UserID:       TestUser,
		Name:         name,
		Color:        "#8ec07c",
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 7),
		GoalDuration: 60,
		CategoryID:   categoryID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestProject(name string) *domain.Project {
	return &domain.Project{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
