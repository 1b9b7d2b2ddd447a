package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blockplan/internal/db"
	"blockplan/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(db db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: db}
}

const assignmentColumns = `id, course_id, name, description, due_date,
	estimated_hours, hours_logged, priority, is_completed, completed_at,
	created_at, updated_at`

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.CourseID,
		a.Name,
		a.Description,
		a.DueDate.Format(time.RFC3339),
		nullableFloatToValue(a.EstimatedHours),
		a.HoursLogged,
		string(a.Priority),
		boolToInt(a.IsCompleted),
		nullableTimeToString(a.CompletedAt, time.RFC3339),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanAssignment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assignment %s not found", id)
	}
	return a, err
}

func (r *SQLiteAssignmentRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE is_completed = 0 ORDER BY due_date`
	if includeCompleted {
		query = `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY due_date`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}

func (r *SQLiteAssignmentRepo) Update(ctx context.Context, a *domain.Assignment) error {
	query := `UPDATE assignments SET course_id = ?, name = ?, description = ?,
		due_date = ?, estimated_hours = ?, hours_logged = ?, priority = ?,
		is_completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.CourseID,
		a.Name,
		a.Description,
		a.DueDate.Format(time.RFC3339),
		nullableFloatToValue(a.EstimatedHours),
		a.HoursLogged,
		string(a.Priority),
		boolToInt(a.IsCompleted),
		nullableTimeToString(a.CompletedAt, time.RFC3339),
		nowUTC(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

func scanAssignment(scan func(...any) error) (*domain.Assignment, error) {
	var a domain.Assignment
	var estimatedHours sql.NullFloat64
	var isCompleted int
	var completedAtStr sql.NullString
	var dueDateStr, priority, createdAtStr, updatedAtStr string

	err := scan(
		&a.ID, &a.CourseID, &a.Name, &a.Description,
		&dueDateStr, &estimatedHours, &a.HoursLogged,
		&priority, &isCompleted, &completedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}

	if estimatedHours.Valid {
		a.EstimatedHours = &estimatedHours.Float64
	}
	a.Priority = domain.Priority(priority)
	a.IsCompleted = intToBool(isCompleted)
	a.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)

	var parseErr error
	a.DueDate, parseErr = time.Parse(time.RFC3339, dueDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing due_date: %w", parseErr)
	}
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &a, nil
}
