package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		total_hours_allocated REAL NOT NULL DEFAULT 0,
		hours_used            REAL NOT NULL DEFAULT 0,
		allocation_percentage REAL NOT NULL DEFAULT 0,
		weekly_hour_cap       REAL,
		daily_hour_cap        REAL,
		priority              TEXT NOT NULL DEFAULT 'medium'
		                      CHECK(priority IN ('low','medium','high','urgent')),
		is_active             INTEGER NOT NULL DEFAULT 1,
		source_adapter        TEXT NOT NULL DEFAULT 'manual',
		source_id             TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_active ON projects(is_active)`,

	`CREATE TABLE IF NOT EXISTS household_tasks (
		id                         TEXT PRIMARY KEY,
		name                       TEXT NOT NULL,
		description                TEXT NOT NULL DEFAULT '',
		estimated_duration_minutes INTEGER NOT NULL,
		recurrence                 TEXT NOT NULL DEFAULT 'weekly'
		                           CHECK(recurrence IN ('none','daily','weekly','biweekly','monthly','custom')),
		preferred_days             TEXT NOT NULL DEFAULT '',
		priority                   TEXT NOT NULL DEFAULT 'medium'
		                           CHECK(priority IN ('low','medium','high','urgent')),
		is_active                  INTEGER NOT NULL DEFAULT 1,
		source_adapter             TEXT NOT NULL DEFAULT 'manual',
		source_id                  TEXT NOT NULL DEFAULT '',
		created_at                 TEXT NOT NULL,
		updated_at                 TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_household_tasks_active ON household_tasks(is_active)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id              TEXT PRIMARY KEY,
		course_id       TEXT NOT NULL,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		due_date        TEXT NOT NULL,
		estimated_hours REAL,
		hours_logged    REAL NOT NULL DEFAULT 0,
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('low','medium','high','urgent')),
		is_completed    INTEGER NOT NULL DEFAULT 0,
		completed_at    TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_due ON assignments(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_completed ON assignments(is_completed)`,

	`CREATE TABLE IF NOT EXISTS external_events (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		is_all_day  INTEGER NOT NULL DEFAULT 0,
		category    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_external_events_start ON external_events(start_time)`,

	`CREATE TABLE IF NOT EXISTS time_blocks (
		id         TEXT PRIMARY KEY,
		task_type  TEXT NOT NULL
		           CHECK(task_type IN ('project','assignment','household','course','personal','meeting')),
		task_id    TEXT NOT NULL,
		task_name  TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'scheduled'
		           CHECK(status IN ('scheduled','confirmed','completed','skipped','rescheduled')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_blocks_start ON time_blocks(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_time_blocks_status ON time_blocks(status)`,

	`CREATE TABLE IF NOT EXISTS user_config (
		id                       TEXT PRIMARY KEY DEFAULT 'default',
		work_start_hour          INTEGER NOT NULL DEFAULT 8,
		work_end_hour            INTEGER NOT NULL DEFAULT 16,
		min_block_minutes        INTEGER NOT NULL DEFAULT 30,
		household_buffer_minutes INTEGER NOT NULL DEFAULT 15,
		schedule_horizon_days    INTEGER NOT NULL DEFAULT 14,
		auto_schedule_enabled    INTEGER NOT NULL DEFAULT 1,
		auto_sync_interval_mins  INTEGER NOT NULL DEFAULT 30,
		timezone                 TEXT NOT NULL DEFAULT 'Local',
		updated_at               TEXT NOT NULL DEFAULT ''
	)`,

	// Seed the single config row
	`INSERT OR IGNORE INTO user_config (id) VALUES ('default')`,
}
