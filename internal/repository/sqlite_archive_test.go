package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRepo_HabitRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	archive := repository.NewSQLiteArchiveRepo(database)

	snapshot := &domain.ArchivedHabit{
		ID:              uuid.New().String(),
		UserID:          testutil.TestUser,
		Name:            "old habit",
		Color:           "#fabd2f",
		Period:          domain.PeriodDaily,
		NumberOfPeriods: 5,
		StartDate:       testutil.Day(2024, time.January, 1),
		EndDate:         testutil.Day(2024, time.January, 5),
		GoalDuration:    30,
		CategoryName:    "reading",
		Completed:       true,
		CurrentStreak:   5,
		BestStreak:      5,
		ArchivedAt:      time.Date(2024, time.January, 6, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, archive.CreateHabit(ctx, snapshot))

	got, err := archive.ListHabits(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old habit", got[0].Name)
	assert.Equal(t, "reading", got[0].CategoryName, "category name is denormalized into the snapshot")
	assert.True(t, got[0].Completed)
	assert.Equal(t, 5, got[0].BestStreak)

	require.NoError(t, archive.DeleteHabit(ctx, snapshot.ID))
	got, err = archive.ListHabits(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArchiveRepo_TaskRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	archive := repository.NewSQLiteArchiveRepo(database)

	snapshot := &domain.ArchivedTask{
		ID:                uuid.New().String(),
		UserID:            testutil.TestUser,
		Name:              "old task",
		Color:             "#8ec07c",
		StartDate:         testutil.Day(2024, time.March, 1),
		EndDate:           testutil.Day(2024, time.March, 10),
		GoalDuration:      300,
		CompletedDuration: 180,
		CategoryName:      "studying",
		Completed:         false,
		ArchivedAt:        time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, archive.CreateTask(ctx, snapshot))

	got, err := archive.ListTasks(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 180, got[0].CompletedDuration)
	assert.Equal(t, "studying", got[0].CategoryName)

	require.NoError(t, archive.DeleteTask(ctx, snapshot.ID))
	got, err = archive.ListTasks(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Empty(t, got)
}
