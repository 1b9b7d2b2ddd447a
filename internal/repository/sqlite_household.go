package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blockplan/internal/db"
	"blockplan/internal/domain"
)

// SQLiteHouseholdTaskRepo implements HouseholdTaskRepo using a SQLite database.
type SQLiteHouseholdTaskRepo struct {
	db db.DBTX
}

// NewSQLiteHouseholdTaskRepo creates a new SQLiteHouseholdTaskRepo.
func NewSQLiteHouseholdTaskRepo(db db.DBTX) *SQLiteHouseholdTaskRepo {
	return &SQLiteHouseholdTaskRepo{db: db}
}

const householdColumns = `id, name, description, estimated_duration_minutes,
	recurrence, preferred_days, priority, is_active, source_adapter, source_id,
	created_at, updated_at`

func (r *SQLiteHouseholdTaskRepo) Create(ctx context.Context, t *domain.HouseholdTask) error {
	query := `INSERT INTO household_tasks (` + householdColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Description,
		t.EstimatedDurationMinutes,
		string(t.Recurrence),
		weekdaysToString(t.PreferredDays),
		string(t.Priority),
		boolToInt(t.IsActive),
		t.SourceAdapter,
		nullableStringToValue(t.SourceID),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting household task: %w", err)
	}
	return nil
}

func (r *SQLiteHouseholdTaskRepo) GetByID(ctx context.Context, id string) (*domain.HouseholdTask, error) {
	query := `SELECT ` + householdColumns + ` FROM household_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanHouseholdTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("household task %s not found", id)
	}
	return t, err
}

func (r *SQLiteHouseholdTaskRepo) List(ctx context.Context, activeOnly bool) ([]*domain.HouseholdTask, error) {
	query := `SELECT ` + householdColumns + ` FROM household_tasks ORDER BY created_at`
	if activeOnly {
		query = `SELECT ` + householdColumns + ` FROM household_tasks WHERE is_active = 1 ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing household tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.HouseholdTask
	for rows.Next() {
		t, err := scanHouseholdTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating household tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteHouseholdTaskRepo) Update(ctx context.Context, t *domain.HouseholdTask) error {
	query := `UPDATE household_tasks SET name = ?, description = ?,
		estimated_duration_minutes = ?, recurrence = ?, preferred_days = ?,
		priority = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Description,
		t.EstimatedDurationMinutes,
		string(t.Recurrence),
		weekdaysToString(t.PreferredDays),
		string(t.Priority),
		boolToInt(t.IsActive),
		nowUTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating household task: %w", err)
	}
	return nil
}

func (r *SQLiteHouseholdTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM household_tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting household task: %w", err)
	}
	return nil
}

func scanHouseholdTask(scan func(...any) error) (*domain.HouseholdTask, error) {
	var t domain.HouseholdTask
	var isActive int
	var recurrence, preferredDays, priority, sourceID, createdAtStr, updatedAtStr string

	err := scan(
		&t.ID, &t.Name, &t.Description,
		&t.EstimatedDurationMinutes,
		&recurrence, &preferredDays,
		&priority, &isActive,
		&t.SourceAdapter, &sourceID,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning household task: %w", err)
	}

	t.Recurrence = domain.ParseRecurrence(recurrence)
	t.PreferredDays = stringToWeekdays(preferredDays)
	t.Priority = domain.Priority(priority)
	t.IsActive = intToBool(isActive)
	t.SourceID = stringToNullableString(sourceID)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &t, nil
}
