package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveService_SweepDueArchivesEndedGoals(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.mustCategory(t, "reading")

	endedHabit := testutil.NewTestHabit(c.ID, "ended habit",
		testutil.WithStartDate(testutil.Day(2024, time.January, 1)),
		testutil.WithNumberOfPeriods(3),
	)
	require.NoError(t, e.habits.Create(ctx, endedHabit))

	liveHabit := testutil.NewTestHabit(c.ID, "live habit",
		testutil.WithStartDate(testutil.Day(2024, time.January, 9)),
		testutil.WithNumberOfPeriods(5),
	)
	require.NoError(t, e.habits.Create(ctx, liveHabit))

	endedTask := testutil.NewTestTask(c.ID, "ended task",
		testutil.WithTaskDates(testutil.Day(2024, time.January, 1), testutil.Day(2024, time.January, 5)))
	require.NoError(t, e.tasks.Create(ctx, endedTask))

	now := time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)
	archived, err := e.archive.SweepDue(ctx, testutil.TestUser, now)
	require.NoError(t, err)
	assert.Equal(t, 2, archived)

	_, err = e.habits.GetByID(ctx, endedHabit.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = e.tasks.GetByID(ctx, endedTask.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = e.habits.GetByID(ctx, liveHabit.ID)
	assert.NoError(t, err, "a habit ending today or later stays live")

	rows, err := e.windowRepo.ListByHabit(ctx, endedHabit.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	archivedHabits, err := e.archive.ListHabits(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, archivedHabits, 1)
	assert.Equal(t, "ended habit", archivedHabits[0].Name)
	assert.Equal(t, "reading", archivedHabits[0].CategoryName)

	archivedTasks, err := e.archive.ListTasks(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, archivedTasks, 1)
}

func TestArchiveService_SweepRunsAtMostOncePerDay(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.mustCategory(t, "cleanup")

	ended := testutil.NewTestTask(c.ID, "first",
		testutil.WithTaskDates(testutil.Day(2024, time.January, 1), testutil.Day(2024, time.January, 2)))
	require.NoError(t, e.tasks.Create(ctx, ended))

	now := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)
	archived, err := e.archive.SweepDue(ctx, testutil.TestUser, now)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)

	// A task ending later that day would be due, but the gate holds.
	straggler := testutil.NewTestTask(c.ID, "straggler",
		testutil.WithTaskDates(testutil.Day(2024, time.January, 3), testutil.Day(2024, time.January, 4)))
	require.NoError(t, e.tasks.Create(ctx, straggler))

	archived, err = e.archive.SweepDue(ctx, testutil.TestUser, now.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, archived, "second run on the same day is a no-op")

	// The next calendar day picks it up.
	archived, err = e.archive.SweepDue(ctx, testutil.TestUser, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, archived)
}

func TestArchiveService_SweepOnlyTouchesTheCallersGoals(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.mustCategory(t, "reading")

	ended := testutil.NewTestTask(c.ID, "ended",
		testutil.WithTaskDates(testutil.Day(2024, time.January, 1), testutil.Day(2024, time.January, 2)))
	require.NoError(t, e.tasks.Create(ctx, ended))

	now := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	// Another user's sweep must not archive this user's goals, and must
	// not close this user's once-per-day gate either.
	archived, err := e.archive.SweepDue(ctx, "someone-else", now)
	require.NoError(t, err)
	assert.Zero(t, archived)

	_, err = e.tasks.GetByID(ctx, ended.ID)
	assert.NoError(t, err, "the task stays live until its owner sweeps")

	archived, err = e.archive.SweepDue(ctx, testutil.TestUser, now)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)
}

func TestArchiveService_SweepWithNothingDue(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	archived, err := e.archive.SweepDue(ctx, testutil.TestUser, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, archived)

	last, err := e.sweepRepo.LastRun(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, testutil.Day(2024, time.June, 1), *last, "the gate advances even when nothing was archived")
}

func TestArchiveService_DeleteSnapshots(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.mustCategory(t, "history")

	ended := testutil.NewTestTask(c.ID, "done",
		testutil.WithTaskDates(testutil.Day(2024, time.January, 1), testutil.Day(2024, time.January, 2)))
	require.NoError(t, e.tasks.Create(ctx, ended))

	_, err := e.archive.SweepDue(ctx, testutil.TestUser, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	archived, err := e.archive.ListTasks(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, archived, 1)

	require.NoError(t, e.archive.DeleteTask(ctx, archived[0].ID))
	archived, err = e.archive.ListTasks(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Empty(t, archived)
}
