package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blockplan/internal/cli/formatter"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change scheduling configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatConfig(cfg))
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var workStart, workEnd, minBlock, buffer, horizon, syncInterval int
	var autoSchedule bool
	var timezone string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Config.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("work-start") {
				cfg.WorkStartHour = workStart
			}
			if cmd.Flags().Changed("work-end") {
				cfg.WorkEndHour = workEnd
			}
			if cmd.Flags().Changed("min-block") {
				cfg.MinBlockMinutes = minBlock
			}
			if cmd.Flags().Changed("buffer") {
				cfg.HouseholdBufferMinutes = buffer
			}
			if cmd.Flags().Changed("horizon") {
				cfg.ScheduleHorizonDays = horizon
			}
			if cmd.Flags().Changed("auto-schedule") {
				cfg.AutoScheduleEnabled = autoSchedule
			}
			if cmd.Flags().Changed("sync-interval") {
				cfg.AutoSyncIntervalMins = syncInterval
			}
			if cmd.Flags().Changed("timezone") {
				cfg.Timezone = timezone
			}

			if err := app.Config.Update(ctx, cfg); err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatConfig(cfg))
			return nil
		},
	}

	cmd.Flags().IntVar(&workStart, "work-start", 0, "Work day start hour (0-23)")
	cmd.Flags().IntVar(&workEnd, "work-end", 0, "Work day end hour (0-23)")
	cmd.Flags().IntVar(&minBlock, "min-block", 0, "Minimum block length in minutes")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "Buffer after household blocks in minutes")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Default scheduling horizon in days")
	cmd.Flags().BoolVar(&autoSchedule, "auto-schedule", false, "Enable the periodic replan loop")
	cmd.Flags().IntVar(&syncInterval, "sync-interval", 0, "Replan interval in minutes")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone name")

	return cmd
}
