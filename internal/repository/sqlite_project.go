package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blockplan/internal/db"
	"blockplan/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, name, description, total_hours_allocated, hours_used,
	allocation_percentage, weekly_hour_cap, daily_hour_cap, priority, is_active,
	source_adapter, source_id, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.TotalHoursAllocated,
		p.HoursUsed,
		p.AllocationPercentage,
		nullableFloatToValue(p.WeeklyHourCap),
		nullableFloatToValue(p.DailyHourCap),
		string(p.Priority),
		boolToInt(p.IsActive),
		p.SourceAdapter,
		nullableStringToValue(p.SourceID),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s not found", id)
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	if activeOnly {
		query = `SELECT ` + projectColumns + ` FROM projects WHERE is_active = 1 ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, description = ?, total_hours_allocated = ?,
		hours_used = ?, allocation_percentage = ?, weekly_hour_cap = ?, daily_hour_cap = ?,
		priority = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.TotalHoursAllocated,
		p.HoursUsed,
		p.AllocationPercentage,
		nullableFloatToValue(p.WeeklyHourCap),
		nullableFloatToValue(p.DailyHourCap),
		string(p.Priority),
		boolToInt(p.IsActive),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// scanProject scans one project row. The scan argument abstracts over
// *sql.Row and *sql.Rows.
func scanProject(scan func(...any) error) (*domain.Project, error) {
	var p domain.Project
	var weeklyCap, dailyCap sql.NullFloat64
	var isActive int
	var priority, sourceID, createdAtStr, updatedAtStr string

	err := scan(
		&p.ID, &p.Name, &p.Description,
		&p.TotalHoursAllocated, &p.HoursUsed, &p.AllocationPercentage,
		&weeklyCap, &dailyCap,
		&priority, &isActive,
		&p.SourceAdapter, &sourceID,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if weeklyCap.Valid {
		p.WeeklyHourCap = &weeklyCap.Float64
	}
	if dailyCap.Valid {
		p.DailyHourCap = &dailyCap.Float64
	}
	p.Priority = domain.Priority(priority)
	p.IsActive = intToBool(isActive)
	p.SourceID = stringToNullableString(sourceID)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
