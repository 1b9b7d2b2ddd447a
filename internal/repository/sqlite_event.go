package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blockplan/internal/db"
	"blockplan/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

const eventColumns = `id, title, description, start_time, end_time,
	is_all_day, category, created_at, updated_at`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.ExternalEvent) error {
	query := `INSERT INTO external_events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Description,
		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
		boolToInt(e.IsAllDay),
		e.Category,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.ExternalEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM external_events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event %s not found", id)
	}
	return e, err
}

func (r *SQLiteEventRepo) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.ExternalEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM external_events
		WHERE start_time < ? AND end_time > ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		to.Format(time.RFC3339), from.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*domain.ExternalEvent
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.ExternalEvent) error {
	query := `UPDATE external_events SET title = ?, description = ?, start_time = ?,
		end_time = ?, is_all_day = ?, category = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.Description,
		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
		boolToInt(e.IsAllDay),
		e.Category,
		nowUTC(),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM external_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

func scanEvent(scan func(...any) error) (*domain.ExternalEvent, error) {
	var e domain.ExternalEvent
	var isAllDay int
	var startStr, endStr, createdAtStr, updatedAtStr string

	err := scan(
		&e.ID, &e.Title, &e.Description,
		&startStr, &endStr,
		&isAllDay, &e.Category,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	e.IsAllDay = intToBool(isAllDay)

	var parseErr error
	e.Start, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	e.End, parseErr = time.Parse(time.RFC3339, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_time: %w", parseErr)
	}
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &e, nil
}
