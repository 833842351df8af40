package service

import (
	"context"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/progress"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/google/uuid"
)

type habitService struct {
	habits     repository.HabitRepo
	windows    repository.HabitProgressRepo
	categories repository.CategoryRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewHabitService(
	habits repository.HabitRepo,
	windows repository.HabitProgressRepo,
	categories repository.CategoryRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) HabitService {
	return &habitService{
		habits:     habits,
		windows:    windows,
		categories: categories,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "habit_create", startedAt, err, map[string]any{
			"habit_id": h.ID,
			"periods":  h.NumberOfPeriods,
		})
	}()

	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err = h.Validate(); err != nil {
		return err
	}

	h.StartDate = progress.MidnightUTC(h.StartDate)
	h.EndDate = progress.HabitEndDate(h.StartDate, h.Period, h.NumberOfPeriods)
	if !h.StartDate.Before(h.EndDate) {
		return domain.ErrInvalidDateRange
	}
	if h.EndDate.After(h.StartDate.AddDate(1, 0, 0)) {
		return domain.ErrDateRangeTooLong
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		if _, err := requireCategory(ctx, txCategories, h.CategoryID); err != nil {
			return err
		}

		// One ledger prefetch covers every window; per-window sums are
		// computed in memory.
		txActivities := repository.NewSQLiteActivityRepo(tx)
		activities, err := txActivities.ListByCategoryRange(ctx, h.UserID, h.CategoryID, h.StartDate, h.EndDate)
		if err != nil {
			return err
		}

		windows := progress.BuildWindows(h.StartDate, h.EndDate, h.Period, h.GoalDuration, ledgerEntries(activities))
		if len(windows) == 0 {
			return domain.ErrProgressGeneration
		}

		h.CurrentStreak, h.BestStreak = progress.WindowStreaks(windows)
		h.Completed = true
		for _, w := range windows {
			if !w.Completed {
				h.Completed = false
				break
			}
		}

		txHabits := repository.NewSQLiteHabitRepo(tx)
		if err := txHabits.Create(ctx, h); err != nil {
			return err
		}

		rows := make([]*domain.HabitProgress, len(windows))
		for i, w := range windows {
			rows[i] = &domain.HabitProgress{
				ID:                uuid.New().String(),
				HabitID:           h.ID,
				UserID:            h.UserID,
				CategoryID:        h.CategoryID,
				Ord:               w.Ord,
				StartDate:         w.StartDate,
				EndDate:           w.EndDate,
				GoalDuration:      h.GoalDuration,
				CompletedDuration: w.CompletedDuration,
				Completed:         w.Completed,
			}
		}
		txWindows := repository.NewSQLiteHabitProgressRepo(tx)
		return txWindows.CreateBatch(ctx, rows)
	})
	return err
}

func (s *habitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, id)
}

func (s *habitService) List(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.habits.List(ctx, userID)
}

func (s *habitService) Progress(ctx context.Context, habitID string) ([]*domain.HabitProgress, error) {
	if _, err := s.habits.GetByID(ctx, habitID); err != nil {
		return nil, err
	}
	return s.windows.ListByHabit(ctx, habitID)
}

func (s *habitService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		if _, err := txHabits.GetByID(ctx, id); err != nil {
			return err
		}
		// Progress rows first, then the habit itself.
		txWindows := repository.NewSQLiteHabitProgressRepo(tx)
		if err := txWindows.DeleteByHabit(ctx, id); err != nil {
			return err
		}
		return txHabits.Delete(ctx, id)
	})
}

func (s *habitService) Archive(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		h, err := txHabits.GetByID(ctx, id)
		if err != nil {
			return err
		}

		txCategories := repository.NewSQLiteCategoryRepo(tx)
		category, err := txCategories.GetByID(ctx, h.CategoryID)
		if err != nil {
			return err
		}

		txArchive := repository.NewSQLiteArchiveRepo(tx)
		if err := txArchive.CreateHabit(ctx, snapshotHabit(h, category.Name, time.Now().UTC())); err != nil {
			return err
		}

		txWindows := repository.NewSQLiteHabitProgressRepo(tx)
		if err := txWindows.DeleteByHabit(ctx, id); err != nil {
			return err
		}
		return txHabits.Delete(ctx, id)
	})
}

// snapshotHabit builds the denormalized archive record for a habit.
func snapshotHabit(h *domain.Habit, categoryName string, archivedAt time.Time) *domain.ArchivedHabit {
	return &domain.ArchivedHabit{
		ID:              h.ID,
		UserID:          h.UserID,
		Name:            h.Name,
		Description:     h.Description,
		Color:           h.Color,
		Period:          h.Period,
		NumberOfPeriods: h.NumberOfPeriods,
		StartDate:       h.StartDate,
		EndDate:         h.EndDate,
		GoalDuration:    h.GoalDuration,
		CategoryName:    categoryName,
		Completed:       h.Completed,
		CurrentStreak:   h.CurrentStreak,
		BestStreak:      h.BestStreak,
		ArchivedAt:      archivedAt,
	}
}
