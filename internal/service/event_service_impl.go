package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blockplan/internal/domain"
	"blockplan/internal/repository"
)

type eventService struct {
	events repository.EventRepo
}

func NewEventService(events repository.EventRepo) EventService {
	return &eventService{events: events}
}

func (s *eventService) Create(ctx context.Context, e *domain.ExternalEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.events.Create(ctx, e)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.ExternalEvent, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.ExternalEvent, error) {
	return s.events.ListInRange(ctx, from, to)
}

func (s *eventService) Update(ctx context.Context, e *domain.ExternalEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	e.UpdatedAt = time.Now().UTC()
	return s.events.Update(ctx, e)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
