package cli

import (
	"errors"
	"log/slog"

	"github.com/akarlsen/cadence/internal/config"
	"github.com/akarlsen/cadence/internal/contract"
	"github.com/akarlsen/cadence/internal/service"
)

// App holds the configuration and service interfaces used by CLI commands.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Habits     service.HabitService
	Tasks      service.TaskService
	Activities service.ActivityService
	Categories service.CategoryService
	Projects   service.ProjectService
	Archive    service.ArchiveService
}

// fail maps a service error onto the user-facing failure line. Expected
// domain conditions surface their message verbatim; anything else is
// logged in full and replaced by a generic line.
func (app *App) fail(err error) error {
	res, expected := contract.FromError(err)
	if !expected {
		app.Logger.Error("command failed", slog.String("error", err.Error()))
	}
	return errors.New(res.Message)
}
