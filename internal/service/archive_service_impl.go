package service

import (
	"context"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/progress"
	"github.com/akarlsen/cadence/internal/repository"
)

type archiveService struct {
	archive  repository.ArchiveRepo
	sweep    repository.SweepStateRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewArchiveService(
	archive repository.ArchiveRepo,
	sweep repository.SweepStateRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ArchiveService {
	return &archiveService{
		archive:  archive,
		sweep:    sweep,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *archiveService) ListHabits(ctx context.Context, userID string) ([]*domain.ArchivedHabit, error) {
	return s.archive.ListHabits(ctx, userID)
}

func (s *archiveService) ListTasks(ctx context.Context, userID string) ([]*domain.ArchivedTask, error) {
	return s.archive.ListTasks(ctx, userID)
}

func (s *archiveService) DeleteHabit(ctx context.Context, id string) error {
	return s.archive.DeleteHabit(ctx, id)
}

func (s *archiveService) DeleteTask(ctx context.Context, id string) error {
	return s.archive.DeleteTask(ctx, id)
}

// SweepDue archives the user's habits and tasks whose end date has
// passed. It is opportunistic: callers invoke it on startup, and the
// per-user sweep_state gate makes all but the first call of a calendar
// day a no-op. The whole sweep commits atomically with the gate update.
func (s *archiveService) SweepDue(ctx context.Context, userID string, now time.Time) (archived int, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "archive_sweep", startedAt, err, map[string]any{
			"user_id":  userID,
			"archived": archived,
		})
	}()

	today := progress.MidnightUTC(now)

	lastRun, err := s.sweep.LastRun(ctx, userID)
	if err != nil {
		return 0, err
	}
	if lastRun != nil && !lastRun.Before(today) {
		return 0, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txWindows := repository.NewSQLiteHabitProgressRepo(tx)
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		txArchive := repository.NewSQLiteArchiveRepo(tx)

		habits, err := txHabits.ListEndedBefore(ctx, userID, today)
		if err != nil {
			return err
		}
		for _, h := range habits {
			category, err := txCategories.GetByID(ctx, h.CategoryID)
			if err != nil {
				return err
			}
			if err := txArchive.CreateHabit(ctx, snapshotHabit(h, category.Name, now.UTC())); err != nil {
				return err
			}
			if err := txWindows.DeleteByHabit(ctx, h.ID); err != nil {
				return err
			}
			if err := txHabits.Delete(ctx, h.ID); err != nil {
				return err
			}
			archived++
		}

		tasks, err := txTasks.ListEndedBefore(ctx, userID, today)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			category, err := txCategories.GetByID(ctx, t.CategoryID)
			if err != nil {
				return err
			}
			if err := txArchive.CreateTask(ctx, snapshotTask(t, category.Name, now.UTC())); err != nil {
				return err
			}
			if err := txTasks.Delete(ctx, t.ID); err != nil {
				return err
			}
			archived++
		}

		txSweep := repository.NewSQLiteSweepStateRepo(tx)
		return txSweep.SetLastRun(ctx, userID, today)
	})
	if err != nil {
		archived = 0
		return 0, err
	}
	return archived, nil
}
