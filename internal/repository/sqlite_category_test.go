package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_CreateGetList(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)

	a := testutil.NewTestCategory("bravo")
	b := testutil.NewTestCategory("alpha")
	require.NoError(t, categories.Create(ctx, a))
	require.NoError(t, categories.Create(ctx, b))

	got, err := categories.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "bravo", got.Name)

	got, err = categories.GetByName(ctx, testutil.TestUser, "alpha")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	list, err := categories.List(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name, "list is name ordered")
	assert.Equal(t, "bravo", list[1].Name)
}

func TestCategoryRepo_DuplicateNameRejectedPerUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)

	require.NoError(t, categories.Create(ctx, testutil.NewTestCategory("focus")))
	assert.Error(t, categories.Create(ctx, testutil.NewTestCategory("focus")), "unique(user_id, name)")

	other := testutil.NewTestCategory("focus")
	other.UserID = "someone-else"
	assert.NoError(t, categories.Create(ctx, other), "same name is fine for another user")
}

func TestCategoryRepo_Rename(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)

	c := testutil.NewTestCategory("old")
	require.NoError(t, categories.Create(ctx, c))
	require.NoError(t, categories.Rename(ctx, c.ID, "new"))

	got, err := categories.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)

	assert.ErrorIs(t, categories.Rename(ctx, "missing", "x"), repository.ErrNotFound)
}

func TestCategoryRepo_ReferenceCount(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)
	activities := repository.NewSQLiteActivityRepo(database)
	habits := repository.NewSQLiteHabitRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	c := testutil.NewTestCategory("deep-work")
	require.NoError(t, categories.Create(ctx, c))

	count, err := categories.ReferenceCount(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(c.ID, testutil.Day(2024, time.May, 1), 10)))

	h := testutil.NewTestHabit(c.ID, "morning pages")
	h.EndDate = h.StartDate.AddDate(0, 0, 2)
	require.NoError(t, habits.Create(ctx, h))

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(c.ID, "draft outline")))

	count, err = categories.ReferenceCount(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "activities, habits and tasks all count")
}

func TestCategoryRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	categories := repository.NewSQLiteCategoryRepo(database)

	c := testutil.NewTestCategory("scratch")
	require.NoError(t, categories.Create(ctx, c))
	require.NoError(t, categories.Delete(ctx, c.ID))

	_, err := categories.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
