package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"blockplan/internal/cli/formatter"
	"blockplan/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and inspect the time-block schedule",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleShowCmd(app),
		newScheduleStatusCmd(app, "confirm", domain.BlockConfirmed, "Block confirmed."),
		newScheduleStatusCmd(app, "complete", domain.BlockCompleted, "Block completed."),
		newScheduleStatusCmd(app, "skip", domain.BlockSkipped, "Block skipped."),
		newScheduleWatchCmd(app),
	)

	return cmd
}

func scheduleRange(ctx context.Context, app *App, from string, days int) (time.Time, time.Time, error) {
	var start time.Time
	if from == "" {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	} else {
		var err error
		if start, err = parseDateFlag(from); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if days <= 0 {
		cfg, err := app.Config.Get(ctx)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		days = cfg.ScheduleHorizonDays
	}
	return start, start.AddDate(0, 0, days-1), nil
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var from string
	var days int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the scheduling engine over the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, end, err := scheduleRange(ctx, app, from, days)
			if err != nil {
				return err
			}

			blocks, err := app.Schedule.Generate(ctx, start, end, !dryRun)
			if err != nil {
				return err
			}

			ptrs := make([]*domain.TimeBlock, len(blocks))
			for i := range blocks {
				ptrs[i] = &blocks[i]
			}
			fmt.Printf("%s\n", formatter.FormatSchedule(ptrs))
			if dryRun {
				fmt.Println(formatter.Dim("Dry run: nothing was saved."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to schedule (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 0, "Days to schedule (default: configured horizon)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the schedule without saving it")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var from string
	var days int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, end, err := scheduleRange(ctx, app, from, days)
			if err != nil {
				return err
			}

			blocks, err := app.Schedule.ListBlocks(ctx, start, end.AddDate(0, 0, 1))
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSchedule(blocks))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to show (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 0, "Days to show (default: configured horizon)")

	return cmd
}

func newScheduleStatusCmd(app *App, verb string, status domain.TimeBlockStatus, doneMsg string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ID",
		Short: fmt.Sprintf("Mark a block as %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedule.UpdateBlockStatus(context.Background(), args[0], status); err != nil {
				return err
			}
			fmt.Println(doneMsg)
			return nil
		},
	}
}

func newScheduleWatchCmd(app *App) *cobra.Command {
	var every int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Replan periodically until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := app.Config.Get(ctx)
			if err != nil {
				return err
			}
			interval := cfg.AutoSyncIntervalMins
			if cmd.Flags().Changed("every") {
				if every <= 0 {
					return fmt.Errorf("interval must be positive, got %d", every)
				}
				interval = every
			} else if !cfg.AutoScheduleEnabled {
				return fmt.Errorf("auto-schedule is disabled (enable with: blockplan config set --auto-schedule, or pass --every)")
			}

			replan := func() {
				start, end, err := scheduleRange(ctx, app, "", 0)
				if err != nil {
					fmt.Fprintf(os.Stderr, "replan failed: %v\n", err)
					return
				}
				blocks, err := app.Schedule.Generate(ctx, start, end, true)
				if err != nil {
					fmt.Fprintf(os.Stderr, "replan failed: %v\n", err)
					return
				}
				fmt.Printf("%s replanned %d blocks through %s\n",
					time.Now().Format("15:04:05"), len(blocks), end.Format("Jan 2"))
			}

			replan()

			c := cron.New()
			if _, err := c.AddFunc(fmt.Sprintf("@every %dm", interval), replan); err != nil {
				return fmt.Errorf("starting replan loop: %w", err)
			}
			c.Start()
			defer c.Stop()

			fmt.Printf("Watching: replanning every %d minutes. Press Ctrl-C to stop.\n", interval)
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().IntVar(&every, "every", 0, "Replan interval in minutes (overrides config)")

	return cmd
}
