package service

import (
	"context"
	"time"

	"blockplan/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetActive(ctx context.Context, id string, active bool) error
	LogHours(ctx context.Context, id string, hours float64) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.HouseholdTask) error
	GetByID(ctx context.Context, id string) (*domain.HouseholdTask, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.HouseholdTask, error)
	Update(ctx context.Context, t *domain.HouseholdTask) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type AssignmentService interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	Create(ctx context.Context, e *domain.ExternalEvent) error
	GetByID(ctx context.Context, id string) (*domain.ExternalEvent, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.ExternalEvent, error)
	Update(ctx context.Context, e *domain.ExternalEvent) error
	Delete(ctx context.Context, id string) error
}

type ConfigService interface {
	Get(ctx context.Context) (*domain.UserConfig, error)
	Update(ctx context.Context, c *domain.UserConfig) error
}

// ImportResult holds the outcome of a bundle import.
type ImportResult struct {
	ProjectCount    int
	TaskCount       int
	AssignmentCount int
	EventCount      int
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

type ScheduleService interface {
	// Generate runs the engine over [start, end] and, when persist is set,
	// atomically replaces the scheduled blocks in that range.
	Generate(ctx context.Context, start, end time.Time, persist bool) ([]domain.TimeBlock, error)
	ListBlocks(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error)
	UpdateBlockStatus(ctx context.Context, id string, status domain.TimeBlockStatus) error
}
