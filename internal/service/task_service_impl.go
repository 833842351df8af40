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

type taskService struct {
	tasks repository.TaskRepo
	uow   db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.StartDate = progress.MidnightUTC(t.StartDate)
	t.EndDate = progress.MidnightUTC(t.EndDate)

	if err := t.Validate(); err != nil {
		return err
	}
	if t.EndDate.After(t.StartDate.AddDate(1, 0, 0)) {
		return domain.ErrDateRangeTooLong
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		if _, err := requireCategory(ctx, txCategories, t.CategoryID); err != nil {
			return err
		}

		// The task is its own single window: seed it from the ledger so
		// activities logged before the task existed count immediately.
		txActivities := repository.NewSQLiteActivityRepo(tx)
		done, err := txActivities.SumDuration(ctx, t.UserID, t.CategoryID, t.StartDate, t.EndDate)
		if err != nil {
			return err
		}
		t.CompletedDuration = done
		t.Completed = done >= t.GoalDuration

		txTasks := repository.NewSQLiteTaskRepo(tx)
		return txTasks.Create(ctx, t)
	})
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.List(ctx, userID)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) Archive(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		txCategories := repository.NewSQLiteCategoryRepo(tx)
		category, err := txCategories.GetByID(ctx, t.CategoryID)
		if err != nil {
			return err
		}

		txArchive := repository.NewSQLiteArchiveRepo(tx)
		if err := txArchive.CreateTask(ctx, snapshotTask(t, category.Name, time.Now().UTC())); err != nil {
			return err
		}
		return txTasks.Delete(ctx, id)
	})
}

// snapshotTask builds the denormalized archive record for a task.
func snapshotTask(t *domain.Task, categoryName string, archivedAt time.Time) *domain.ArchivedTask {
	return &domain.ArchivedTask{
		ID:                t.ID,
		UserID:            t.UserID,
		Name:              t.Name,
		Description:       t.Description,
		Color:             t.Color,
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		GoalDuration:      t.GoalDuration,
		CompletedDuration: t.CompletedDuration,
		CategoryName:      categoryName,
		Completed:         t.Completed,
		ArchivedAt:        archivedAt,
	}
}
