package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akarlsen/cadence/internal/cli"
	"github.com/akarlsen/cadence/internal/config"
	"github.com/akarlsen/cadence/internal/db"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/akarlsen/cadence/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CADENCE_HOME"))
	if err != nil {
		return err
	}

	if !cfg.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Command output goes to stdout; diagnostics go to a log file next to
	// the database so they never interleave with rendered tables.
	logSink := openLogSink(cfg.DBPath)
	if c, ok := logSink.(io.Closer); ok {
		defer c.Close()
	}
	logger := slog.New(slog.NewTextHandler(logSink, nil))
	observer := service.NewLogUseCaseObserver(logSink)

	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	windowRepo := repository.NewSQLiteHabitProgressRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	archiveRepo := repository.NewSQLiteArchiveRepo(database)
	sweepRepo := repository.NewSQLiteSweepStateRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Config:     cfg,
		Logger:     logger,
		Habits:     service.NewHabitService(habitRepo, windowRepo, categoryRepo, uow, observer),
		Tasks:      service.NewTaskService(taskRepo, uow),
		Activities: service.NewActivityService(activityRepo, uow, observer),
		Categories: service.NewCategoryService(categoryRepo),
		Projects:   service.NewProjectService(projectRepo),
		Archive:    service.NewArchiveService(archiveRepo, sweepRepo, uow, observer),
	}

	return cli.NewRootCmd(app).Execute()
}

// openLogSink opens cadence.log next to the database, discarding logs if
// the file cannot be opened.
func openLogSink(dbPath string) io.Writer {
	path := filepath.Join(filepath.Dir(dbPath), "cadence.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}
