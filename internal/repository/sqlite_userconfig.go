package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blockplan/internal/db"
	"blockplan/internal/domain"
)

// SQLiteUserConfigRepo implements UserConfigRepo against the single-row
// user_config table.
type SQLiteUserConfigRepo struct {
	db db.DBTX
}

// NewSQLiteUserConfigRepo creates a new SQLiteUserConfigRepo.
func NewSQLiteUserConfigRepo(db db.DBTX) *SQLiteUserConfigRepo {
	return &SQLiteUserConfigRepo{db: db}
}

func (r *SQLiteUserConfigRepo) Get(ctx context.Context) (*domain.UserConfig, error) {
	query := `SELECT work_start_hour, work_end_hour, min_block_minutes,
		household_buffer_minutes, schedule_horizon_days, auto_schedule_enabled,
		auto_sync_interval_mins, timezone, updated_at
		FROM user_config WHERE id = 'default'`

	var c domain.UserConfig
	var autoSchedule int
	var updatedAtStr string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&c.WorkStartHour, &c.WorkEndHour, &c.MinBlockMinutes,
		&c.HouseholdBufferMinutes, &c.ScheduleHorizonDays, &autoSchedule,
		&c.AutoSyncIntervalMins, &c.Timezone, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		// The migration seeds the row, but tolerate its absence.
		cfg := domain.DefaultUserConfig()
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading user config: %w", err)
	}

	c.AutoScheduleEnabled = intToBool(autoSchedule)
	if updatedAtStr != "" {
		if t, parseErr := time.Parse(time.RFC3339, updatedAtStr); parseErr == nil {
			c.UpdatedAt = t
		}
	}
	return &c, nil
}

func (r *SQLiteUserConfigRepo) Update(ctx context.Context, c *domain.UserConfig) error {
	query := `UPDATE user_config SET work_start_hour = ?, work_end_hour = ?,
		min_block_minutes = ?, household_buffer_minutes = ?, schedule_horizon_days = ?,
		auto_schedule_enabled = ?, auto_sync_interval_mins = ?, timezone = ?, updated_at = ?
		WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query,
		c.WorkStartHour, c.WorkEndHour,
		c.MinBlockMinutes, c.HouseholdBufferMinutes, c.ScheduleHorizonDays,
		boolToInt(c.AutoScheduleEnabled), c.AutoSyncIntervalMins, c.Timezone,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("updating user config: %w", err)
	}
	return nil
}
