package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blockplan/internal/domain"
	"blockplan/internal/repository"
)

type taskService struct {
	tasks repository.HouseholdTaskRepo
}

func NewTaskService(tasks repository.HouseholdTaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.HouseholdTask) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Recurrence == "" {
		t.Recurrence = domain.RecurrenceWeekly
	}
	if t.SourceAdapter == "" {
		t.SourceAdapter = domain.SourceManual
	}
	t.IsActive = true
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.HouseholdTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, activeOnly bool) ([]*domain.HouseholdTask, error) {
	return s.tasks.List(ctx, activeOnly)
}

func (s *taskService) Update(ctx context.Context, t *domain.HouseholdTask) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetActive(ctx context.Context, id string, active bool) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.IsActive = active
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
