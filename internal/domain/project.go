package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Description string

	TotalHoursAllocated  float64
	HoursUsed            float64
	AllocationPercentage float64
	WeeklyHourCap        *float64
	DailyHourCap         *float64

	Priority Priority
	IsActive bool

	SourceAdapter string
	SourceID      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursRemaining returns the unconsumed part of the project's hour budget.
// Never negative: a project that has overrun simply stops receiving blocks.
func (p *Project) HoursRemaining() float64 {
	remaining := p.TotalHoursAllocated - p.HoursUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsAcademic reports whether the project came from document parsing and
// should be scheduled in personal time without allocation tracking.
func (p *Project) IsAcademic() bool {
	return p.SourceAdapter == SourceDocumentParser
}

// Validate checks invariants that must hold before a project reaches the
// scheduling engine.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.TotalHoursAllocated < 0 {
		return fmt.Errorf("total hours allocated must not be negative, got %.1f", p.TotalHoursAllocated)
	}
	if p.AllocationPercentage < 0 || p.AllocationPercentage > 100 {
		return fmt.Errorf("allocation percentage must be in [0,100], got %.1f", p.AllocationPercentage)
	}
	return nil
}
