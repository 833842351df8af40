package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/service"
	"github.com/akarlsen/cadence/internal/testutil"
	"github.com/stretchr/testify/require"
)

// env wires the full service stack over one in-memory database.
type env struct {
	db         *sql.DB
	categories service.CategoryService
	projects   service.ProjectService
	activities service.ActivityService
	habits     service.HabitService
	tasks      service.TaskService
	archive    service.ArchiveService

	categoryRepo *repository.SQLiteCategoryRepo
	activityRepo *repository.SQLiteActivityRepo
	habitRepo    *repository.SQLiteHabitRepo
	windowRepo   *repository.SQLiteHabitProgressRepo
	taskRepo     *repository.SQLiteTaskRepo
	archiveRepo  *repository.SQLiteArchiveRepo
	sweepRepo    *repository.SQLiteSweepStateRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	windowRepo := repository.NewSQLiteHabitProgressRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	archiveRepo := repository.NewSQLiteArchiveRepo(database)
	sweepRepo := repository.NewSQLiteSweepStateRepo(database)

	return &env{
		db:         database,
		categories: service.NewCategoryService(categoryRepo),
		projects:   service.NewProjectService(projectRepo),
		activities: service.NewActivityService(activityRepo, uow),
		habits:     service.NewHabitService(habitRepo, windowRepo, categoryRepo, uow),
		tasks:      service.NewTaskService(taskRepo, uow),
		archive:    service.NewArchiveService(archiveRepo, sweepRepo, uow),

		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		habitRepo:    habitRepo,
		windowRepo:   windowRepo,
		taskRepo:     taskRepo,
		archiveRepo:  archiveRepo,
		sweepRepo:    sweepRepo,
	}
}

func (e *env) mustCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	c := testutil.NewTestCategory(name)
	require.NoError(t, e.categoryRepo.Create(context.Background(), c))
	return c
}

// seedActivity writes a ledger row directly, bypassing propagation: the
// entry exists before any habit or task does.
func (e *env) seedActivity(t *testing.T, a *domain.Activity) {
	t.Helper()
	require.NoError(t, e.activityRepo.Create(context.Background(), a))
}
