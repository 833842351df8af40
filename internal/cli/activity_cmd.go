package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/akarlsen/cadence/internal/cli/formatter"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log and manage activities",
	}

	cmd.AddCommand(
		newActivityLogCmd(app),
		newActivityListCmd(app),
		newActivityEditCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func resolveActivityID(ctx context.Context, app *App, input string) (string, error) {
	activities, err := app.Activities.List(ctx, app.Config.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return resolveByPrefix(ids, input, "activity")
}

func newActivityLogCmd(app *App) *cobra.Command {
	var category, date, note string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log minutes against a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				var err error
				if day, err = parseDay(date); err != nil {
					return err
				}
			}
			categoryID, err := resolveCategoryID(cmd.Context(), app, category)
			if err != nil {
				return err
			}

			a := &domain.Activity{
				UserID:     app.Config.UserID,
				CategoryID: categoryID,
				Date:       day,
				Duration:   minutes,
				Note:       note,
			}
			if err := app.Activities.Log(cmd.Context(), a); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Logged %d min on %s", a.Duration, formatDay(a.Date))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or ID")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Duration in minutes")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Calendar day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("minutes")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No activities yet"))
				return nil
			}

			categories, err := app.Categories.List(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			names := make(map[string]string, len(categories))
			for _, c := range categories {
				names[c.ID] = c.Name
			}

			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				rows = append(rows, []string{
					shortID(a.ID),
					formatDay(a.Date),
					names[a.CategoryID],
					fmt.Sprintf("%d min", a.Duration),
					a.Note,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "DATE", "CATEGORY", "DURATION", "NOTE"}, rows))
			return nil
		},
	}
}

func newActivityEditCmd(app *App) *cobra.Command {
	var category, date, note string
	var minutes int

	cmd := &cobra.Command{
		Use:   "edit <activity>",
		Short: "Edit a logged activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveActivityID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(cmd.Context(), id)
			if err != nil {
				return app.fail(err)
			}

			if cmd.Flags().Changed("minutes") {
				a.Duration = minutes
			}
			if cmd.Flags().Changed("note") {
				a.Note = note
			}
			if cmd.Flags().Changed("date") {
				if a.Date, err = parseDay(date); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				if a.CategoryID, err = resolveCategoryID(cmd.Context(), app, category); err != nil {
					return err
				}
			}

			if err := app.Activities.Update(cmd.Context(), a); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Updated activity"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or ID")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Duration in minutes")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Calendar day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Note")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <activity>",
		Short: "Delete a logged activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveActivityID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Delete(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted activity"))
			return nil
		},
	}
}
