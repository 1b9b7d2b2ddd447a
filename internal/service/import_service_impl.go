package service

import (
	"context"
	"fmt"

	"blockplan/internal/db"
	"blockplan/internal/importer"
	"blockplan/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates an ImportService. Imports run inside a single
// transaction so a failed bundle leaves nothing behind.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	bundle, err := importer.LoadBundle(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	if errs := importer.ValidateBundle(bundle); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(bundle)
	if err != nil {
		return nil, fmt.Errorf("converting import bundle: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		tasks := repository.NewSQLiteHouseholdTaskRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)
		events := repository.NewSQLiteEventRepo(tx)

		for _, p := range converted.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("creating project %q: %w", p.Name, err)
			}
		}
		for _, t := range converted.HouseholdTasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating household task %q: %w", t.Name, err)
			}
		}
		for _, a := range converted.Assignments {
			if err := assignments.Create(ctx, a); err != nil {
				return fmt.Errorf("creating assignment %q: %w", a.Name, err)
			}
		}
		for _, e := range converted.Events {
			if err := events.Create(ctx, e); err != nil {
				return fmt.Errorf("creating event %q: %w", e.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		ProjectCount:    len(converted.Projects),
		TaskCount:       len(converted.HouseholdTasks),
		AssignmentCount: len(converted.Assignments),
		EventCount:      len(converted.Events),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
