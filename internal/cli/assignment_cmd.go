package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blockplan/internal/cli/formatter"
	"blockplan/internal/domain"
)

func resolveAssignmentID(ctx context.Context, app *App, input string) (string, error) {
	assignments, err := app.Assignments.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}
	id, err := resolveID(input, ids)
	if err != nil {
		return "", fmt.Errorf("assignment %w", err)
	}
	return id, nil
}

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"hw"},
		Short:   "Manage course assignments",
	}

	cmd.AddCommand(
		newAssignmentAddCmd(app),
		newAssignmentListCmd(app),
		newAssignmentCompleteCmd(app),
		newAssignmentRemoveCmd(app),
	)

	return cmd
}

func newAssignmentAddCmd(app *App) *cobra.Command {
	var course, name, description, due, priority string
	var estimated float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDateFlag(due)
			if err != nil {
				return err
			}

			a := &domain.Assignment{
				CourseID:    course,
				Name:        name,
				Description: description,
				DueDate:     dueDate,
				Priority:    domain.Priority(priority),
			}
			if estimated > 0 {
				a.EstimatedHours = &estimated
			}

			if err := app.Assignments.Create(context.Background(), a); err != nil {
				return err
			}
			fmt.Printf("Created assignment %s, due %s\n", a.Name, formatter.RelativeDate(a.DueDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course name")
	cmd.Flags().StringVar(&name, "name", "", "Assignment name")
	cmd.Flags().StringVar(&description, "description", "", "Assignment description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&estimated, "est", 0, "Estimated hours of work")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high|urgent)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments ordered by due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.Assignments.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("No assignments found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatAssignmentList(assignments))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed assignments")

	return cmd
}

func newAssignmentCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete ID",
		Aliases: []string{"done"},
		Short:   "Mark an assignment as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssignmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Assignments.Complete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Assignment completed.")
			return nil
		},
	}
}

func newAssignmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssignmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Assignments.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Assignment removed.")
			return nil
		},
	}
}
