package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"blockplan/internal/cli/formatter"
	"blockplan/internal/domain"
)

var weekdayFlags = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

func parseWeekdayFlags(names []string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, name := range names {
		d, ok := weekdayFlags[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %q", name)
		}
		days = append(days, d)
	}
	return days, nil
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, false)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	id, err := resolveID(input, ids)
	if err != nil {
		return "", fmt.Errorf("task %w", err)
	}
	return id, nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage recurring household tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskPauseCmd(app),
		newTaskResumeCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, description, recurrence, priority string
	var duration int
	var days []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a household task",
		RunE: func(cmd *cobra.Command, args []string) error {
			preferredDays, err := parseWeekdayFlags(days)
			if err != nil {
				return err
			}

			t := &domain.HouseholdTask{
				Name:                     name,
				Description:              description,
				EstimatedDurationMinutes: duration,
				Recurrence:               domain.ParseRecurrence(recurrence),
				PreferredDays:            preferredDays,
				Priority:                 domain.Priority(priority),
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Created task %s [%s]\n", t.Name, formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().IntVar(&duration, "duration", 30, "Estimated duration in minutes")
	cmd.Flags().StringVar(&recurrence, "recurrence", "weekly", "Recurrence (none|daily|weekly|biweekly|monthly|custom)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Preferred weekdays (e.g. saturday,sunday)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high|urgent)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List household tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), !all)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive tasks")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, description, recurrence, priority string
	var duration int
	var days []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a household task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("description") {
				t.Description = description
			}
			if cmd.Flags().Changed("duration") {
				t.EstimatedDurationMinutes = duration
			}
			if cmd.Flags().Changed("recurrence") {
				t.Recurrence = domain.ParseRecurrence(recurrence)
			}
			if cmd.Flags().Changed("days") {
				preferredDays, err := parseWeekdayFlags(days)
				if err != nil {
					return err
				}
				t.PreferredDays = preferredDays
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = domain.Priority(priority)
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().IntVar(&duration, "duration", 0, "Estimated duration in minutes")
	cmd.Flags().StringVar(&recurrence, "recurrence", "", "Recurrence (none|daily|weekly|biweekly|monthly|custom)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Preferred weekdays")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|urgent)")

	return cmd
}

func newTaskPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause ID",
		Short: "Deactivate a task so it is no longer scheduled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetActive(ctx, id, false); err != nil {
				return err
			}
			fmt.Println("Task paused.")
			return nil
		},
	}
}

func newTaskResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ID",
		Short: "Reactivate a paused task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetActive(ctx, id, true); err != nil {
				return err
			}
			fmt.Println("Task resumed.")
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a household task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task removed.")
			return nil
		},
	}
}
