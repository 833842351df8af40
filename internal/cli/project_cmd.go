package cli

import (
	"fmt"

	"github.com/akarlsen/cadence/internal/cli/formatter"
	"github.com/akarlsen/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectRenameCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				UserID: app.Config.UserID,
				Name:   args[0],
			}
			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created project %s", p.Name)))
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), app.Config.UserID)
			if err != nil {
				return app.fail(err)
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No projects yet"))
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{shortID(p.ID), p.Name, formatDay(p.CreatedAt)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME", "CREATED"}, rows))
			return nil
		},
	}
}

func newProjectRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <project> <new-name>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Rename(cmd.Context(), id, args[1]); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Renamed project to %s", args[1])))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <project>",
		Short: "Delete a project (habits and tasks are detached, not deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(cmd.Context(), id); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted project"))
			return nil
		},
	}
}
