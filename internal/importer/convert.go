package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"blockplan/internal/domain"
)

// ImportedBundle holds the domain objects produced from a validated Bundle.
type ImportedBundle struct {
	Projects       []*domain.Project
	HouseholdTasks []*domain.HouseholdTask
	Assignments    []*domain.Assignment
	Events         []*domain.ExternalEvent
}

// Convert transforms a validated Bundle into domain objects ready for
// persistence. Call ValidateBundle first; Convert assumes the bundle is
// valid.
func Convert(bundle *Bundle) (*ImportedBundle, error) {
	now := time.Now().UTC()
	out := &ImportedBundle{}

	for _, p := range bundle.Projects {
		out.Projects = append(out.Projects, &domain.Project{
			ID:                   uuid.New().String(),
			Name:                 p.Name,
			Description:          p.Description,
			TotalHoursAllocated:  p.TotalHours,
			HoursUsed:            p.HoursUsed,
			AllocationPercentage: p.AllocationPercentage,
			WeeklyHourCap:        p.WeeklyHourCap,
			DailyHourCap:         p.DailyHourCap,
			Priority:             priorityOrDefault(p.Priority),
			IsActive:             true,
			SourceAdapter:        sourceOrDefault(p.SourceAdapter),
			SourceID:             p.SourceID,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}

	for _, t := range bundle.HouseholdTasks {
		out.HouseholdTasks = append(out.HouseholdTasks, &domain.HouseholdTask{
			ID:                       uuid.New().String(),
			Name:                     t.Name,
			Description:              t.Description,
			EstimatedDurationMinutes: t.DurationMinutes,
			Recurrence:               domain.ParseRecurrence(t.Recurrence),
			PreferredDays:            weekdaysFromNames(t.PreferredDays),
			Priority:                 priorityOrDefault(t.Priority),
			IsActive:                 true,
			SourceAdapter:            domain.SourceManual,
			CreatedAt:                now,
			UpdatedAt:                now,
		})
	}

	for _, a := range bundle.Assignments {
		due, err := parseDate(a.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parsing due_date for %q: %w", a.Name, err)
		}
		out.Assignments = append(out.Assignments, &domain.Assignment{
			ID:             uuid.New().String(),
			CourseID:       a.Course,
			Name:           a.Name,
			Description:    a.Description,
			DueDate:        due,
			EstimatedHours: a.EstimatedHours,
			Priority:       priorityOrDefault(a.Priority),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	for _, e := range bundle.Events {
		start, err := parseDate(e.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing start for %q: %w", e.Title, err)
		}
		end, err := parseDate(e.End)
		if err != nil {
			return nil, fmt.Errorf("parsing end for %q: %w", e.Title, err)
		}
		out.Events = append(out.Events, &domain.ExternalEvent{
			ID:          uuid.New().String(),
			Title:       e.Title,
			Description: e.Description,
			Start:       start,
			End:         end,
			IsAllDay:    e.AllDay,
			Category:    e.Category,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return out, nil
}

func priorityOrDefault(s string) domain.Priority {
	if s == "" {
		return domain.PriorityMedium
	}
	return domain.Priority(s)
}

func sourceOrDefault(s string) string {
	if s == "" {
		return domain.SourceManual
	}
	return s
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func weekdaysFromNames(names []string) []time.Weekday {
	if len(names) == 0 {
		return nil
	}
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		if d, ok := weekdayByName[name]; ok {
			days = append(days, d)
		}
	}
	return days
}
