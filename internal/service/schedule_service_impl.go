package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blockplan/internal/db"
	"blockplan/internal/domain"
	"blockplan/internal/repository"
	"blockplan/internal/scheduler"
)

type scheduleService struct {
	projects    repository.ProjectRepo
	tasks       repository.HouseholdTaskRepo
	assignments repository.AssignmentRepo
	events      repository.EventRepo
	blocks      repository.TimeBlockRepo
	config      repository.UserConfigRepo
	uow         db.UnitOfWork
	oracle      scheduler.TimingOracle
}

// NewScheduleService wires the scheduling engine to persistence. The oracle
// may be nil; the engine then falls back to default timing windows.
func NewScheduleService(
	projects repository.ProjectRepo,
	tasks repository.HouseholdTaskRepo,
	assignments repository.AssignmentRepo,
	events repository.EventRepo,
	blocks repository.TimeBlockRepo,
	config repository.UserConfigRepo,
	uow db.UnitOfWork,
	oracle scheduler.TimingOracle,
) ScheduleService {
	return &scheduleService{
		projects:    projects,
		tasks:       tasks,
		assignments: assignments,
		events:      events,
		blocks:      blocks,
		config:      config,
		uow:         uow,
		oracle:      oracle,
	}
}

func (s *scheduleService) Generate(ctx context.Context, start, end time.Time, persist bool) ([]domain.TimeBlock, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	snap, err := s.loadSnapshot(ctx, start, end)
	if err != nil {
		return nil, err
	}

	engine, err := scheduler.NewEngine(*cfg, s.oracle)
	if err != nil {
		return nil, err
	}

	blocks, err := engine.GenerateSchedule(ctx, snap, start, end)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range blocks {
		blocks[i].ID = uuid.New().String()
		blocks[i].CreatedAt = now
		blocks[i].UpdatedAt = now
	}

	if !persist {
		return blocks, nil
	}

	// Replace only scheduled blocks in the range; confirmed and completed
	// blocks survive a replan.
	from := dateOf(start)
	to := dateOf(end).AddDate(0, 0, 1)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTimeBlockRepo(tx)
		if err := repo.DeleteScheduledInRange(ctx, from, to); err != nil {
			return fmt.Errorf("clearing scheduled blocks: %w", err)
		}
		for i := range blocks {
			if err := repo.Create(ctx, &blocks[i]); err != nil {
				return fmt.Errorf("persisting block %q: %w", blocks[i].TaskName, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (s *scheduleService) loadSnapshot(ctx context.Context, start, end time.Time) (scheduler.Snapshot, error) {
	var snap scheduler.Snapshot
	var err error

	if snap.Projects, err = s.projects.List(ctx, true); err != nil {
		return snap, fmt.Errorf("loading projects: %w", err)
	}
	if snap.HouseholdTasks, err = s.tasks.List(ctx, true); err != nil {
		return snap, fmt.Errorf("loading household tasks: %w", err)
	}
	if snap.Assignments, err = s.assignments.List(ctx, false); err != nil {
		return snap, fmt.Errorf("loading assignments: %w", err)
	}
	eventsFrom := dateOf(start)
	eventsTo := dateOf(end).AddDate(0, 0, 1)
	if snap.Events, err = s.events.ListInRange(ctx, eventsFrom, eventsTo); err != nil {
		return snap, fmt.Errorf("loading events: %w", err)
	}

	// Confirmed blocks survive a replan, so the engine must treat their
	// time as occupied.
	existing, err := s.blocks.ListInRange(ctx, eventsFrom, eventsTo)
	if err != nil {
		return snap, fmt.Errorf("loading time blocks: %w", err)
	}
	for _, b := range existing {
		if b.Status == domain.BlockConfirmed {
			snap.Events = append(snap.Events, &domain.ExternalEvent{
				ID:    b.ID,
				Title: b.TaskName,
				Start: b.Start,
				End:   b.End,
			})
		}
	}
	return snap, nil
}

func (s *scheduleService) ListBlocks(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error) {
	return s.blocks.ListInRange(ctx, from, to)
}

func (s *scheduleService) UpdateBlockStatus(ctx context.Context, id string, status domain.TimeBlockStatus) error {
	switch status {
	case domain.BlockScheduled, domain.BlockConfirmed, domain.BlockCompleted, domain.BlockSkipped, domain.BlockRescheduled:
	default:
		return fmt.Errorf("invalid block status %q", status)
	}
	return s.blocks.UpdateStatus(ctx, id, status)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
