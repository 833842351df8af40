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

type activityService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewActivityService(activities repository.ActivityRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ActivityService {
	return &activityService{
		activities: activities,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *activityService) Log(ctx context.Context, a *domain.Activity) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "activity_log", startedAt, err, map[string]any{
			"activity_id": a.ID,
			"duration":    a.Duration,
		})
	}()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.Date = progress.MidnightUTC(a.Date)

	if err = a.Validate(); err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		if _, err := requireCategory(ctx, txCategories, a.CategoryID); err != nil {
			return err
		}

		txActivities := repository.NewSQLiteActivityRepo(tx)
		if err := txActivities.Create(ctx, a); err != nil {
			return err
		}
		return propagateDelta(ctx, tx, a.UserID, a.CategoryID, a.Date, a.Duration)
	})
	return err
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context, userID string) ([]*domain.Activity, error) {
	return s.activities.ListByUser(ctx, userID)
}

// Update applies the duration difference against the activity's current
// date and category. An update that also moves the activity to another
// category leaves the old category's windows untouched; reversing the old
// contribution there is deliberately not done until the intended product
// semantics are settled.
func (s *activityService) Update(ctx context.Context, a *domain.Activity) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "activity_update", startedAt, err, map[string]any{
			"activity_id": a.ID,
		})
	}()

	a.Date = progress.MidnightUTC(a.Date)
	if err = a.Validate(); err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		before, err := txActivities.GetByID(ctx, a.ID)
		if err != nil {
			return err
		}

		if a.CategoryID != before.CategoryID {
			txCategories := repository.NewSQLiteCategoryRepo(tx)
			if _, err := requireCategory(ctx, txCategories, a.CategoryID); err != nil {
				return err
			}
		}

		a.UserID = before.UserID
		a.CreatedAt = before.CreatedAt
		a.UpdatedAt = time.Now().UTC()
		if err := txActivities.Update(ctx, a); err != nil {
			return err
		}

		delta := a.Duration - before.Duration
		return propagateDelta(ctx, tx, a.UserID, a.CategoryID, a.Date, delta)
	})
	return err
}

func (s *activityService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "activity_delete", startedAt, err, map[string]any{
			"activity_id": id,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		a, err := txActivities.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txActivities.Delete(ctx, id); err != nil {
			return err
		}
		return propagateDelta(ctx, tx, a.UserID, a.CategoryID, a.Date, -a.Duration)
	})
	return err
}
