package cli

import (
	"fmt"

	"github.com/akarlsen/cadence/internal/cli/formatter"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage activity categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
		newCategoryRenameCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Category{
				UserID: app.Config.UserID,
				Name:   args[0],
			}
			if err := app.Categories.Create(cmd.Context(), c); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created category %s", c.Name)))
			return nil
		},
	}
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Categories.List(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No categories yet"))
				return nil
			}

			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{shortID(c.ID), c.Name, formatDay(c.CreatedAt)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME", "CREATED"}, rows))
			return nil
		},
	}
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <category> <new-name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCategoryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Categories.Rename(cmd.Context(), id, args[1]); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Renamed category to %s", args[1])))
			return nil
		},
	}
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <category>",
		Short: "Delete a category (must be unused)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCategoryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Categories.Delete(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted category"))
			return nil
		},
	}
}
