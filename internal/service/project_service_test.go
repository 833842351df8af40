package service_test

import (
	"context"
	"testing"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateListRename(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("q3 goals")
	require.NoError(t, e.projects.Create(ctx, p))

	blank := testutil.NewTestProject("  ")
	assert.ErrorIs(t, e.projects.Create(ctx, blank), domain.ErrEmptyName)

	require.NoError(t, e.projects.Rename(ctx, p.ID, "q4 goals"))

	list, err := e.projects.List(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "q4 goals", list[0].Name)
}

func TestProjectService_DeleteDetachesGoals(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.mustCategory(t, "planning")

	p := testutil.NewTestProject("spring cleaning")
	require.NoError(t, e.projects.Create(ctx, p))

	h := testutil.NewTestHabit(c.ID, "declutter", testutil.WithHabitProject(p.ID))
	require.NoError(t, e.habits.Create(ctx, h))

	require.NoError(t, e.projects.Delete(ctx, p.ID))

	_, err := e.projects.List(ctx, testutil.TestUser)
	require.NoError(t, err)

	got, err := e.habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProjectID, "the habit survives with its project reference cleared")

	assert.ErrorIs(t, e.projects.Delete(ctx, p.ID), repository.ErrNotFound)
}
