package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blockplan/internal/domain"
	"blockplan/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	if p.SourceAdapter == "" {
		p.SourceAdapter = domain.SourceManual
	}
	p.IsActive = true
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, activeOnly)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetActive(ctx context.Context, id string, active bool) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.IsActive = active
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) LogHours(ctx context.Context, id string, hours float64) error {
	if hours <= 0 {
		return fmt.Errorf("logged hours must be positive, got %.1f", hours)
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.HoursUsed += hours
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
