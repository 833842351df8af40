package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/cli/formatter"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage recurring habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitShowCmd(app),
		newHabitArchiveCmd(app),
		newHabitRemoveCmd(app),
	)

	return cmd
}

func resolveHabitID(ctx context.Context, app *App, input string) (string, error) {
	habits, err := app.Habits.List(ctx, app.Config.UserID)
	if err != nil {
		return "", err
	}
	for _, h := range habits {
		if h.Name == input {
			return h.ID, nil
		}
	}
	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	return resolveByPrefix(ids, input, "habit")
}

func newHabitAddCmd(app *App) *cobra.Command {
	var name, description, color, category, project, period, start string
	var periods, goal int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a habit and materialize its progress windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate := time.Now().UTC()
			if start != "" {
				var err error
				if startDate, err = parseDay(start); err != nil {
					return err
				}
			}
			categoryID, err := resolveCategoryID(cmd.Context(), app, category)
			if err != nil {
				return err
			}

			h := &domain.Habit{
				UserID:          app.Config.UserID,
				Name:            name,
				Description:     description,
				Color:           color,
				Period:          domain.Period(period),
				NumberOfPeriods: periods,
				StartDate:       startDate,
				GoalDuration:    goal,
				CategoryID:      categoryID,
			}
			if project != "" {
				projectID, err := resolveProjectID(cmd.Context(), app, project)
				if err != nil {
					return err
				}
				h.ProjectID = &projectID
			}

			if err := app.Habits.Create(cmd.Context(), h); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Created habit %s: %d %s period(s), %s to %s",
				h.Name, h.NumberOfPeriods, h.Period, formatDay(h.StartDate), formatDay(h.EndDate),
			)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Habit name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&color, "color", "#83a598", "Display color")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or ID")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period: daily, weekly or monthly")
	cmd.Flags().IntVarP(&periods, "periods", "n", 0, "Number of periods (2-90)")
	cmd.Flags().IntVarP(&goal, "goal", "g", 0, "Goal minutes per period")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start day (YYYY-MM-DD, default today)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("periods")
	cmd.MarkFlagRequired("goal")

	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No habits yet"))
				return nil
			}

			rows := make([][]string, 0, len(habits))
			for _, h := range habits {
				rows = append(rows, []string{
					shortID(h.ID),
					h.Name,
					fmt.Sprintf("%d× %s", h.NumberOfPeriods, h.Period),
					fmt.Sprintf("%s → %s", formatDay(h.StartDate), formatDay(h.EndDate)),
					formatter.CompletedMark(h.Completed),
					formatter.StreakBadge(h.CurrentStreak, h.BestStreak),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "CADENCE", "RANGE", "DONE", "STREAK"}, rows))
			return nil
		},
	}
}

func newHabitShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <habit>",
		Short: "Show a habit and its progress windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			h, err := app.Habits.GetByID(cmd.Context(), id)
			if err != nil {
				return app.fail(err)
			}
			windows, err := app.Habits.Progress(cmd.Context(), id)
			if err != nil {
				return app.fail(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(h.Name))
			if h.Description != "" {
				fmt.Fprintln(out, formatter.Dim(h.Description))
			}
			fmt.Fprintf(out, "%d × %s, %d min per period, %s\n",
				h.NumberOfPeriods, h.Period, h.GoalDuration, formatter.StreakBadge(h.CurrentStreak, h.BestStreak))
			fmt.Fprintln(out)

			for _, w := range windows {
				fmt.Fprintf(out, "%s %s → %s  %s\n",
					formatter.CompletedMark(w.Completed),
					formatDay(w.StartDate),
					formatDay(w.EndDate),
					formatter.RenderProgress(w.CompletedDuration, w.GoalDuration, 20),
				)
			}
			return nil
		},
	}
}

func newHabitArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <habit>",
		Short: "Snapshot a habit into the archive and remove it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Archive(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Archived habit"))
			return nil
		},
	}
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <habit>",
		Short: "Delete a habit and its progress windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Delete(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted habit"))
			return nil
		},
	}
}
