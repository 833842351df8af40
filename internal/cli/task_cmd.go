package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/cli/formatter"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage one-off tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskArchiveCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, app.Config.UserID)
	if err != nil {
		return "", err
	}
	for _, t := range tasks {
		if t.Name == input {
			return t.ID, nil
		}
	}
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return resolveByPrefix(ids, input, "task")
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, description, color, category, project, start, end string
	var goal int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task over a fixed date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate := time.Now().UTC()
			if start != "" {
				var err error
				if startDate, err = parseDay(start); err != nil {
					return err
				}
			}
			endDate, err := parseDay(end)
			if err != nil {
				return err
			}
			categoryID, err := resolveCategoryID(cmd.Context(), app, category)
			if err != nil {
				return err
			}

			t := &domain.Task{
				UserID:       app.Config.UserID,
				Name:         name,
				Description:  description,
				Color:        color,
				StartDate:    startDate,
				EndDate:      endDate,
				GoalDuration: goal,
				CategoryID:   categoryID,
			}
			if project != "" {
				projectID, err := resolveProjectID(cmd.Context(), app, project)
				if err != nil {
					return err
				}
				t.ProjectID = &projectID
			}

			if err := app.Tasks.Create(cmd.Context(), t); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Created task %s: %s to %s, %d min goal",
				t.Name, formatDay(t.StartDate), formatDay(t.EndDate), t.GoalDuration,
			)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&color, "color", "#8ec07c", "Display color")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or ID")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End day (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVarP(&goal, "goal", "g", 0, "Goal minutes over the whole range")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("goal")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No tasks yet"))
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					shortID(t.ID),
					t.Name,
					fmt.Sprintf("%s → %s", formatDay(t.StartDate), formatDay(t.EndDate)),
					formatter.RenderProgress(t.CompletedDuration, t.GoalDuration, 12),
					formatter.CompletedMark(t.Completed),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "RANGE", "PROGRESS", "DONE"}, rows))
			return nil
		},
	}
}

func newTaskArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <task>",
		Short: "Snapshot a task into the archive and remove it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Archive(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Archived task"))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted task"))
			return nil
		},
	}
}
