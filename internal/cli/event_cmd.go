package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"blockplan/internal/cli/formatter"
	"blockplan/internal/domain"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage external calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, description, start, end, category string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an external event",
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := parseDateFlag(start)
			if err != nil {
				return err
			}
			endTime, err := parseDateFlag(end)
			if err != nil {
				return err
			}

			e := &domain.ExternalEvent{
				Title:       title,
				Description: description,
				Start:       startTime,
				End:         endTime,
				IsAllDay:    allDay,
				Category:    category,
			}
			if err := app.Events.Create(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Created event %s [%s]\n", e.Title, formatter.TruncID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&start, "start", "", "Start time (RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "End time (RFC3339)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event")
	cmd.Flags().StringVar(&category, "category", "", "Category (work|personal|health|social|other)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			to := from.AddDate(0, 0, days)

			events, err := app.Events.ListInRange(context.Background(), from, to)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Printf("No events in the next %d days.\n", days)
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatEventList(events))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Days ahead to list")

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Event removed.")
			return nil
		},
	}
}
