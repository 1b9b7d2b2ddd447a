package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blockplan/internal/domain"
	"blockplan/internal/repository"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
}

func NewAssignmentService(assignments repository.AssignmentRepo) AssignmentService {
	return &assignmentService{assignments: assignments}
}

func (s *assignmentService) Create(ctx context.Context, a *domain.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Priority == "" {
		a.Priority = domain.PriorityMedium
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.assignments.Create(ctx, a)
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *assignmentService) List(ctx context.Context, includeCompleted bool) ([]*domain.Assignment, error) {
	return s.assignments.List(ctx, includeCompleted)
}

func (s *assignmentService) Update(ctx context.Context, a *domain.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Complete(ctx context.Context, id string) error {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.IsCompleted {
		return nil
	}
	now := time.Now().UTC()
	a.IsCompleted = true
	a.CompletedAt = &now
	a.UpdatedAt = now
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
