package repository

import (
	"context"
	"time"

	"blockplan/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type HouseholdTaskRepo interface {
	Create(ctx context.Context, t *domain.HouseholdTask) error
	GetByID(ctx context.Context, id string) (*domain.HouseholdTask, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.HouseholdTask, error)
	Update(ctx context.Context, t *domain.HouseholdTask) error
	Delete(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.ExternalEvent) error
	GetByID(ctx context.Context, id string) (*domain.ExternalEvent, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.ExternalEvent, error)
	Update(ctx context.Context, e *domain.ExternalEvent) error
	Delete(ctx context.Context, id string) error
}

type TimeBlockRepo interface {
	Create(ctx context.Context, b *domain.TimeBlock) error
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error)
	UpdateStatus(ctx context.Context, id string, status domain.TimeBlockStatus) error
	DeleteScheduledInRange(ctx context.Context, from, to time.Time) error
}

type UserConfigRepo interface {
	Get(ctx context.Context) (*domain.UserConfig, error)
	Update(ctx context.Context, c *domain.UserConfig) error
}
