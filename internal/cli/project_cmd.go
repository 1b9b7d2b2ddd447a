package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blockplan/internal/cli/formatter"
	"blockplan/internal/domain"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx, false)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	id, err := resolveID(input, ids)
	if err != nil {
		return "", fmt.Errorf("project %w", err)
	}
	return id, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectLogCmd(app),
		newProjectPauseCmd(app),
		newProjectResumeCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, description, priority string
	var totalHours, allocation, weeklyCap, dailyCap float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:                 name,
				Description:          description,
				TotalHoursAllocated:  totalHours,
				AllocationPercentage: allocation,
				Priority:             domain.Priority(priority),
			}
			if weeklyCap > 0 {
				p.WeeklyHourCap = &weeklyCap
			}
			if dailyCap > 0 {
				p.DailyHourCap = &dailyCap
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().Float64Var(&totalHours, "hours", 0, "Total hour budget")
	cmd.Flags().Float64Var(&allocation, "allocation", 0, "Share of work hours in percent")
	cmd.Flags().Float64Var(&weeklyCap, "weekly-cap", 0, "Weekly hour cap (0 = none)")
	cmd.Flags().Float64Var(&dailyCap, "daily-cap", 0, "Daily hour cap (0 = none)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high|urgent)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("allocation")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), !all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, description, priority string
	var totalHours, allocation float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("description") {
				p.Description = description
			}
			if cmd.Flags().Changed("priority") {
				p.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("hours") {
				p.TotalHoursAllocated = totalHours
			}
			if cmd.Flags().Changed("allocation") {
				p.AllocationPercentage = allocation
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|urgent)")
	cmd.Flags().Float64Var(&totalHours, "hours", 0, "Total hour budget")
	cmd.Flags().Float64Var(&allocation, "allocation", 0, "Share of work hours in percent")

	return cmd
}

func newProjectLogCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "log ID",
		Short: "Log hours worked against a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.LogHours(ctx, id, hours); err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %.1fh on %s (%.1fh remaining)\n", hours, p.Name, p.HoursRemaining())
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours to log")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newProjectPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause ID",
		Short: "Deactivate a project so it no longer receives blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetActive(ctx, id, false); err != nil {
				return err
			}
			fmt.Println("Project paused.")
			return nil
		},
	}
}

func newProjectResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ID",
		Short: "Reactivate a paused project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetActive(ctx, id, true); err != nil {
				return err
			}
			fmt.Println("Project resumed.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Project removed.")
			return nil
		},
	}
}
