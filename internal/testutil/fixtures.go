package testutil

import (
	"time"

	"blockplan/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithAllocation(pct float64) ProjectOption {
	return func(p *domain.Project) {
		p.AllocationPercentage = pct
	}
}

func WithHourBudget(total, used float64) ProjectOption {
	return func(p *domain.Project) {
		p.TotalHoursAllocated = total
		p.HoursUsed = used
	}
}

func WithSourceAdapter(adapter string) ProjectOption {
	return func(p *domain.Project) {
		p.SourceAdapter = adapter
	}
}

func WithInactive() ProjectOption {
	return func(p *domain.Project) {
		p.IsActive = false
	}
}

// NewProject creates a project fixture with sensible defaults.
func NewProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:                   uuid.NewString(),
		Name:                 name,
		TotalHoursAllocated:  40,
		AllocationPercentage: 25,
		Priority:             domain.PriorityMedium,
		IsActive:             true,
		SourceAdapter:        domain.SourceManual,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Household task options
type HouseholdTaskOption func(*domain.HouseholdTask)

func WithRecurrence(r domain.Recurrence) HouseholdTaskOption {
	return func(t *domain.HouseholdTask) {
		t.Recurrence = r
	}
}

func WithDuration(minutes int) HouseholdTaskOption {
	return func(t *domain.HouseholdTask) {
		t.EstimatedDurationMinutes = minutes
	}
}

func WithPreferredDays(days ...time.Weekday) HouseholdTaskOption {
	return func(t *domain.HouseholdTask) {
		t.PreferredDays = days
	}
}

// NewHouseholdTask creates a household task fixture with sensible defaults.
func NewHouseholdTask(name string, opts ...HouseholdTaskOption) *domain.HouseholdTask {
	now := time.Now().UTC()
	t := &domain.HouseholdTask{
		ID:                       uuid.NewString(),
		Name:                     name,
		EstimatedDurationMinutes: 30,
		Recurrence:               domain.RecurrenceWeekly,
		Priority:                 domain.PriorityMedium,
		IsActive:                 true,
		SourceAdapter:            domain.SourceManual,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewAssignment creates an assignment fixture due at the given time.
func NewAssignment(name string, due time.Time) *domain.Assignment {
	now := time.Now().UTC()
	return &domain.Assignment{
		ID:        uuid.NewString(),
		CourseID:  uuid.NewString(),
		Name:      name,
		DueDate:   due,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEvent creates an external event fixture spanning [start, end).
func NewEvent(title string, start, end time.Time) *domain.ExternalEvent {
	now := time.Now().UTC()
	return &domain.ExternalEvent{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     start,
		End:       end,
		Category:  "personal",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
