package domain

import (
	"fmt"
	"time"
)

type Assignment struct {
	ID          string
	CourseID    string
	Name        string
	Description string

	DueDate        time.Time
	EstimatedHours *float64
	HoursLogged    float64

	Priority    Priority
	IsCompleted bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks invariants that must hold before an assignment reaches
// the scheduling engine.
func (a *Assignment) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("assignment name is required")
	}
	if a.DueDate.IsZero() {
		return fmt.Errorf("assignment due date is required")
	}
	if a.EstimatedHours != nil && *a.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must not be negative, got %.1f", *a.EstimatedHours)
	}
	return nil
}
