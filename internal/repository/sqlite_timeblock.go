package repository

import (
	"context"
	"fmt"
	"time"

	"blockplan/internal/db"
	"blockplan/internal/domain"
)

// SQLiteTimeBlockRepo implements TimeBlockRepo using a SQLite database.
type SQLiteTimeBlockRepo struct {
	db db.DBTX
}

// NewSQLiteTimeBlockRepo creates a new SQLiteTimeBlockRepo.
func NewSQLiteTimeBlockRepo(db db.DBTX) *SQLiteTimeBlockRepo {
	return &SQLiteTimeBlockRepo{db: db}
}

const timeBlockColumns = `id, task_type, task_id, task_name, start_time, end_time,
	status, created_at, updated_at`

func (r *SQLiteTimeBlockRepo) Create(ctx context.Context, b *domain.TimeBlock) error {
	query := `INSERT INTO time_blocks (` + timeBlockColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		string(b.TaskType),
		b.TaskID,
		b.TaskName,
		b.Start.Format(time.RFC3339),
		b.End.Format(time.RFC3339),
		string(b.Status),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting time block: %w", err)
	}
	return nil
}

func (r *SQLiteTimeBlockRepo) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error) {
	query := `SELECT ` + timeBlockColumns + ` FROM time_blocks
		WHERE start_time < ? AND end_time > ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		to.Format(time.RFC3339), from.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing time blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.TimeBlock
	for rows.Next() {
		var b domain.TimeBlock
		var taskType, status, startStr, endStr, createdAtStr, updatedAtStr string

		if err := rows.Scan(
			&b.ID, &taskType, &b.TaskID, &b.TaskName,
			&startStr, &endStr, &status,
			&createdAtStr, &updatedAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning time block: %w", err)
		}

		b.TaskType = domain.TaskType(taskType)
		b.Status = domain.TimeBlockStatus(status)

		var parseErr error
		b.Start, parseErr = time.Parse(time.RFC3339, startStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing start_time: %w", parseErr)
		}
		b.End, parseErr = time.Parse(time.RFC3339, endStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing end_time: %w", parseErr)
		}
		b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}

		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time blocks: %w", err)
	}
	return blocks, nil
}

func (r *SQLiteTimeBlockRepo) UpdateStatus(ctx context.Context, id string, status domain.TimeBlockStatus) error {
	query := `UPDATE time_blocks SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating time block status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time block %s not found", id)
	}
	return nil
}

// DeleteScheduledInRange removes blocks in SCHEDULED status that start
// inside [from, to). Confirmed, completed, and otherwise-touched blocks
// survive replans.
func (r *SQLiteTimeBlockRepo) DeleteScheduledInRange(ctx context.Context, from, to time.Time) error {
	query := `DELETE FROM time_blocks
		WHERE status = 'scheduled' AND start_time >= ? AND start_time < ?`
	_, err := r.db.ExecContext(ctx, query,
		from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("deleting scheduled blocks: %w", err)
	}
	return nil
}
