package domain

import (
	"fmt"
	"time"
)

type HouseholdTask struct {
	ID          string
	Name        string
	Description string

	EstimatedDurationMinutes int
	Recurrence               Recurrence
	PreferredDays            []time.Weekday

	Priority Priority
	IsActive bool

	SourceAdapter string
	SourceID      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks invariants that must hold before a task reaches the
// scheduling engine.
func (t *HouseholdTask) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if t.EstimatedDurationMinutes <= 0 {
		return fmt.Errorf("estimated duration must be positive, got %d", t.EstimatedDurationMinutes)
	}
	return nil
}
