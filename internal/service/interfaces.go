package service

import (
	"context"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
)

type HabitService interface {
	// Create validates the habit, derives its end date, materializes one
	// progress window per period from the activity ledger and persists
	// habit plus windows in one transaction.
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, userID string) ([]*domain.Habit, error)
	Progress(ctx context.Context, habitID string) ([]*domain.HabitProgress, error)
	Delete(ctx context.Context, id string) error
	// Archive snapshots the habit (category name inlined) and deletes the
	// live rows.
	Archive(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
}

type ActivityService interface {
	// Log, Update and Delete each run the activity write and the full
	// habit/task propagation inside a single transaction: either the
	// ledger and all derived progress move together, or nothing does.
	Log(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, userID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context, userID string) ([]*domain.Category, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ArchiveService interface {
	ListHabits(ctx context.Context, userID string) ([]*domain.ArchivedHabit, error)
	ListTasks(ctx context.Context, userID string) ([]*domain.ArchivedTask, error)
	DeleteHabit(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	// SweepDue archives the user's habits and tasks whose end date lies
	// before now's calendar day. It is gated to at most one run per user
	// per day and returns the number of records archived.
	SweepDue(ctx context.Context, userID string, now time.Time) (int, error)
}
