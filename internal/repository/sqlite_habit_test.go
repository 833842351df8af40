package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)
	habits := repository.NewSQLiteHabitRepo(database)

	c := testutil.NewTestCategory("meditation")
	require.NoError(t, categories.Create(ctx, c))

	h := testutil.NewTestHabit(c.ID, "morning sit",
		testutil.WithPeriod(domain.PeriodWeekly),
		testutil.WithNumberOfPeriods(4),
		testutil.WithGoalDuration(120),
		testutil.WithStartDate(testutil.Day(2024, time.January, 1)),
	)
	h.EndDate = testutil.Day(2024, time.January, 28)
	require.NoError(t, habits.Create(ctx, h))

	got, err := habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "morning sit", got.Name)
	assert.Equal(t, domain.PeriodWeekly, got.Period)
	assert.Equal(t, 4, got.NumberOfPeriods)
	assert.Equal(t, testutil.Day(2024, time.January, 1), got.StartDate)
	assert.Equal(t, testutil.Day(2024, time.January, 28), got.EndDate)
	assert.False(t, got.Completed)
	assert.Zero(t, got.CurrentStreak)

	_, err = habits.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHabitRepo_PeriodCountConstraint(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)
	habits := repository.NewSQLiteHabitRepo(database)

	c := testutil.NewTestCategory("stretching")
	require.NoError(t, categories.Create(ctx, c))

	h := testutil.NewTestHabit(c.ID, "single period", testutil.WithNumberOfPeriods(1))
	h.EndDate = h.StartDate
	assert.Error(t, habits.Create(ctx, h), "schema rejects a one-period habit")
}

func TestHabitRepo_UpdateDerived(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)
	habits := repository.NewSQLiteHabitRepo(database)

	c := testutil.NewTestCategory("journaling")
	require.NoError(t, categories.Create(ctx, c))

	h := testutil.NewTestHabit(c.ID, "evening pages")
	h.EndDate = h.StartDate.AddDate(0, 0, 2)
	require.NoError(t, habits.Create(ctx, h))

	require.NoError(t, habits.UpdateDerived(ctx, h.ID, true, 3, 5))

	got, err := habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, 3, got.CurrentStreak)
	assert.Equal(t, 5, got.BestStreak)
}

func TestHabitRepo_ListEndedBefore(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)
	habits := repository.NewSQLiteHabitRepo(database)

	c := testutil.NewTestCategory("reading")
	require.NoError(t, categories.Create(ctx, c))

	ended := testutil.NewTestHabit(c.ID, "ended", testutil.WithStartDate(testutil.Day(2024, time.January, 1)))
	ended.EndDate = testutil.Day(2024, time.January, 3)
	live := testutil.NewTestHabit(c.ID, "live", testutil.WithStartDate(testutil.Day(2024, time.January, 1)))
	live.EndDate = testutil.Day(2024, time.January, 10)
	otherUsers := testutil.NewTestHabit(c.ID, "other user's",
		testutil.WithHabitUser("someone-else"),
		testutil.WithStartDate(testutil.Day(2024, time.January, 1)))
	otherUsers.EndDate = testutil.Day(2024, time.January, 3)
	require.NoError(t, habits.Create(ctx, ended))
	require.NoError(t, habits.Create(ctx, live))
	require.NoError(t, habits.Create(ctx, otherUsers))

	got, err := habits.ListEndedBefore(ctx, testutil.TestUser, testutil.Day(2024, time.January, 10))
	require.NoError(t, err)
	require.Len(t, got, 1, "other users' habits stay untouched")
	assert.Equal(t, ended.ID, got[0].ID)
}
