package cli

import (
	"fmt"

	"github.com/akarlsen/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse and prune archived habits and tasks",
	}

	cmd.AddCommand(
		newArchiveHabitsCmd(app),
		newArchiveTasksCmd(app),
		newArchiveRemoveHabitCmd(app),
		newArchiveRemoveTaskCmd(app),
	)

	return cmd
}

func newArchiveHabitsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "List archived habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Archive.ListHabits(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No archived habits"))
				return nil
			}

			rows := make([][]string, 0, len(habits))
			for _, h := range habits {
				rows = append(rows, []string{
					shortID(h.ID),
					h.Name,
					h.CategoryName,
					fmt.Sprintf("%d× %s", h.NumberOfPeriods, h.Period),
					formatter.CompletedMark(h.Completed),
					formatter.StreakBadge(h.CurrentStreak, h.BestStreak),
					formatDay(h.ArchivedAt),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "CATEGORY", "CADENCE", "DONE", "STREAK", "ARCHIVED"}, rows))
			return nil
		},
	}
}

func newArchiveTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List archived tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Archive.ListTasks(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No archived tasks"))
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					shortID(t.ID),
					t.Name,
					t.CategoryName,
					fmt.Sprintf("%d/%d min", t.CompletedDuration, t.GoalDuration),
					formatter.CompletedMark(t.Completed),
					formatDay(t.ArchivedAt),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "CATEGORY", "PROGRESS", "DONE", "ARCHIVED"}, rows))
			return nil
		},
	}
}

func newArchiveRemoveHabitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-habit <id>",
		Short: "Delete an archived habit snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Archive.ListHabits(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			ids := make([]string, 0, len(habits))
			for _, h := range habits {
				ids = append(ids, h.ID)
			}
			id, err := resolveByPrefix(ids, args[0], "archived habit")
			if err != nil {
				return err
			}
			if err := app.Archive.DeleteHabit(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted archived habit"))
			return nil
		},
	}
}

func newArchiveRemoveTaskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-task <id>",
		Short: "Delete an archived task snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Archive.ListTasks(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			ids := make([]string, 0, len(tasks))
			for _, t := range tasks {
				ids = append(ids, t.ID)
			}
			id, err := resolveByPrefix(ids, args[0], "archived task")
			if err != nil {
				return err
			}
			if err := app.Archive.DeleteTask(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted archived task"))
			return nil
		},
	}
}
