package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App. Before any command runs, habits
// and tasks whose end date has passed are swept into the archive; the
// sweep is a no-op after its first run of the day.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cadence",
		Short:         "Habit, task and activity progress tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Archive.SweepDue(cmd.Context(), app.Config.UserID, time.Now())
			if err != nil {
				// The sweep must never block the command the user asked for.
				app.Logger.Warn("archive sweep failed", "error", err)
				return nil
			}
			if n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Archived %d ended item(s)\n", n)
			}
			return nil
		},
	}

	root.AddCommand(
		newCategoryCmd(app),
		newProjectCmd(app),
		newActivityCmd(app),
		newHabitCmd(app),
		newTaskCmd(app),
		newArchiveCmd(app),
	)

	return root
}
