package domain

import (
	"fmt"
	"time"
)

// UserConfig is the single-row scheduling configuration. The engine consumes
// the work-hour bounds, minimum block length, and household buffer; the
// remaining fields drive the CLI and the auto-schedule loop.
type UserConfig struct {
	WorkStartHour          int
	WorkEndHour            int
	MinBlockMinutes        int
	HouseholdBufferMinutes int

	ScheduleHorizonDays  int
	AutoScheduleEnabled  bool
	AutoSyncIntervalMins int
	Timezone             string

	UpdatedAt time.Time
}

// DefaultUserConfig returns the configuration used until the user sets one.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		WorkStartHour:          8,
		WorkEndHour:            16,
		MinBlockMinutes:        30,
		HouseholdBufferMinutes: 15,
		ScheduleHorizonDays:    14,
		AutoScheduleEnabled:    true,
		AutoSyncIntervalMins:   30,
		Timezone:               "Local",
	}
}

// Validate checks the config fields the engine cannot proceed without.
func (c UserConfig) Validate() error {
	if c.WorkStartHour < 0 || c.WorkStartHour > 23 {
		return fmt.Errorf("work start hour must be in [0,23], got %d", c.WorkStartHour)
	}
	if c.WorkEndHour < 0 || c.WorkEndHour > 23 {
		return fmt.Errorf("work end hour must be in [0,23], got %d", c.WorkEndHour)
	}
	if c.WorkStartHour >= c.WorkEndHour {
		return fmt.Errorf("work start hour (%d) must be before work end hour (%d)", c.WorkStartHour, c.WorkEndHour)
	}
	if c.MinBlockMinutes <= 0 {
		return fmt.Errorf("minimum block minutes must be positive, got %d", c.MinBlockMinutes)
	}
	if c.HouseholdBufferMinutes < 0 {
		return fmt.Errorf("household buffer minutes must not be negative, got %d", c.HouseholdBufferMinutes)
	}
	return nil
}
