package repository

import (
	"context"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, userID, name string) (*domain.Category, error)
	List(ctx context.Context, userID string) ([]*domain.Category, error)
	Rename(ctx context.Context, id, name string) error
	ReferenceCount(ctx context.Context, id string) (int, error)
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Activity, error)
	// ListByCategoryRange returns the dated entries for one user+category
	// within [from, to] inclusive, ordered by date ascending. Used by the
	// materializer's single prefetch.
	ListByCategoryRange(ctx context.Context, userID, categoryID string, from, to time.Time) ([]*domain.Activity, error)
	// SumDuration totals logged minutes for one user+category within
	// [from, to] inclusive.
	SumDuration(ctx context.Context, userID, categoryID string, from, to time.Time) (int, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, userID string) ([]*domain.Habit, error)
	// ListEndedBefore returns the user's habits whose end date is strictly
	// before the given day. Used by the archive sweep.
	ListEndedBefore(ctx context.Context, userID string, day time.Time) ([]*domain.Habit, error)
	// UpdateDerived persists the recomputed completion flag and streak
	// counters after a propagation.
	UpdateDerived(ctx context.Context, id string, completed bool, currentStreak, bestStreak int) error
	Delete(ctx context.Context, id string) error
}

type HabitProgressRepo interface {
	// CreateBatch inserts all windows of a habit in one statement.
	CreateBatch(ctx context.Context, rows []*domain.HabitProgress) error
	// ListByHabit returns a habit's windows ordered by ord ascending.
	ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitProgress, error)
	// ApplyDelta atomically adds delta minutes (floored at zero) to every
	// window of the given user+category whose date range contains day, and
	// re-derives each window's completed flag in the same statement. It
	// returns the distinct habit ids whose windows were touched.
	ApplyDelta(ctx context.Context, userID, categoryID string, day time.Time, delta int) ([]string, error)
	DeleteByHabit(ctx context.Context, habitID string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	ListEndedBefore(ctx context.Context, userID string, day time.Time) ([]*domain.Task, error)
	// ApplyDelta is the single-window counterpart of
	// HabitProgressRepo.ApplyDelta, applied to the task rows themselves.
	ApplyDelta(ctx context.Context, userID, categoryID string, day time.Time, delta int) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ArchiveRepo interface {
	CreateHabit(ctx context.Context, a *domain.ArchivedHabit) error
	CreateTask(ctx context.Context, a *domain.ArchivedTask) error
	ListHabits(ctx context.Context, userID string) ([]*domain.ArchivedHabit, error)
	ListTasks(ctx context.Context, userID string) ([]*domain.ArchivedTask, error)
	DeleteHabit(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

type SweepStateRepo interface {
	// LastRun returns the day the archive sweep last ran for the user, or
	// nil if it never has.
	LastRun(ctx context.Context, userID string) (*time.Time, error)
	SetLastRun(ctx context.Context, userID string, day time.Time) error
}
