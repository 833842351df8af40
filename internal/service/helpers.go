package service

import (
	"context"
	"errors"
	"time"

	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/progress"
	"github.com/akarlsen/cadence/internal/repository"
)

// ledgerEntries projects activities onto the prefetched ledger form the
// window builder consumes.
func ledgerEntries(activities []*domain.Activity) []progress.Entry {
	entries := make([]progress.Entry, len(activities))
	for i, a := range activities {
		entries[i] = progress.Entry{Date: a.Date, Duration: a.Duration}
	}
	return entries
}

// requireCategory resolves a category id, translating a missing row into
// the domain invariant error.
func requireCategory(ctx context.Context, categories repository.CategoryRepo, id string) (*domain.Category, error) {
	c, err := categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// recomputeHabitDerived re-derives each affected habit's completed flag
// and streak counters from its stored windows, read back in ascending
// order within the same transaction as the window updates.
func recomputeHabitDerived(ctx context.Context, tx db.DBTX, habitIDs []string) error {
	txProgress := repository.NewSQLiteHabitProgressRepo(tx)
	txHabits := repository.NewSQLiteHabitRepo(tx)

	for _, habitID := range habitIDs {
		rows, err := txProgress.ListByHabit(ctx, habitID)
		if err != nil {
			return err
		}
		completed := len(rows) > 0
		for _, row := range rows {
			if !row.Completed {
				completed = false
				break
			}
		}
		current, best := progress.ProgressStreaks(rows)
		if err := txHabits.UpdateDerived(ctx, habitID, completed, current, best); err != nil {
			return err
		}
	}
	return nil
}

// propagateDelta pushes a signed duration delta into every habit window
// and task whose date range covers the activity's day for the same
// user+category, then refreshes the derived state of each affected habit.
// Runs entirely inside the caller's transaction.
func propagateDelta(ctx context.Context, tx db.DBTX, userID, categoryID string, day time.Time, delta int) error {
	if delta == 0 {
		return nil
	}

	txProgress := repository.NewSQLiteHabitProgressRepo(tx)
	habitIDs, err := txProgress.ApplyDelta(ctx, userID, categoryID, day, delta)
	if err != nil {
		return err
	}

	txTasks := repository.NewSQLiteTaskRepo(tx)
	if err := txTasks.ApplyDelta(ctx, userID, categoryID, day, delta); err != nil {
		return err
	}

	return recomputeHabitDerived(ctx, tx, habitIDs)
}
