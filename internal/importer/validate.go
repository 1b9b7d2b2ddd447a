package importer

import (
	"fmt"
	"time"
)

var (
	validPriorities  = map[string]bool{"low": true, "medium": true, "high": true, "urgent": true}
	validRecurrences = map[string]bool{"none": true, "daily": true, "weekly": true, "biweekly": true, "monthly": true, "custom": true}
	validWeekdays    = map[string]bool{
		"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
		"thursday": true, "friday": true, "saturday": true,
	}
	validCategories = map[string]bool{"work": true, "personal": true, "health": true, "social": true, "other": true}
)

// ValidateBundle checks the import bundle for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateBundle(bundle *Bundle) []error {
	var errs []error

	errs = append(errs, validateProjects(bundle.Projects)...)
	errs = append(errs, validateHouseholdTasks(bundle.HouseholdTasks)...)
	errs = append(errs, validateAssignments(bundle.Assignments)...)
	errs = append(errs, validateEvents(bundle.Events)...)

	return errs
}

func validateProjects(projects []ProjectImport) []error {
	var errs []error
	names := make(map[string]bool)

	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if names[p.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate name %q", prefix, p.Name))
		} else {
			names[p.Name] = true
		}

		if p.TotalHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.total_hours must be positive", prefix))
		}
		if p.HoursUsed < 0 {
			errs = append(errs, fmt.Errorf("%s.hours_used must not be negative", prefix))
		}
		if p.AllocationPercentage < 0 || p.AllocationPercentage > 100 {
			errs = append(errs, fmt.Errorf("%s.allocation_percentage must be between 0 and 100", prefix))
		}
		if p.WeeklyHourCap != nil && *p.WeeklyHourCap <= 0 {
			errs = append(errs, fmt.Errorf("%s.weekly_hour_cap must be positive", prefix))
		}
		if p.DailyHourCap != nil && *p.DailyHourCap <= 0 {
			errs = append(errs, fmt.Errorf("%s.daily_hour_cap must be positive", prefix))
		}
		if p.Priority != "" && !validPriorities[p.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, p.Priority))
		}
	}

	return errs
}

func validateHouseholdTasks(tasks []HouseholdTaskImport) []error {
	var errs []error
	names := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("household_tasks[%d]", i)

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if names[t.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate name %q", prefix, t.Name))
		} else {
			names[t.Name] = true
		}

		if t.DurationMinutes <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration_minutes must be positive", prefix))
		}
		if t.Recurrence == "" {
			errs = append(errs, fmt.Errorf("%s.recurrence is required", prefix))
		} else if !validRecurrences[t.Recurrence] {
			errs = append(errs, fmt.Errorf("%s.recurrence: invalid value %q", prefix, t.Recurrence))
		}
		if t.Priority != "" && !validPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		for _, day := range t.PreferredDays {
			if !validWeekdays[day] {
				errs = append(errs, fmt.Errorf("%s.preferred_days: invalid weekday %q", prefix, day))
			}
		}
	}

	return errs
}

func validateAssignments(assignments []AssignmentImport) []error {
	var errs []error

	for i, a := range assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)

		if a.Course == "" {
			errs = append(errs, fmt.Errorf("%s.course is required", prefix))
		}
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if a.DueDate == "" {
			errs = append(errs, fmt.Errorf("%s.due_date is required", prefix))
		} else if _, err := parseDate(a.DueDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD or RFC3339)", prefix, a.DueDate))
		}
		if a.EstimatedHours != nil && *a.EstimatedHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_hours must be positive", prefix))
		}
		if a.Priority != "" && !validPriorities[a.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, a.Priority))
		}
	}

	return errs
}

func validateEvents(events []EventImport) []error {
	var errs []error

	for i, e := range events {
		prefix := fmt.Sprintf("external_events[%d]", i)

		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}

		var start, end time.Time
		var startErr, endErr error

		if e.Start == "" {
			errs = append(errs, fmt.Errorf("%s.start is required", prefix))
		} else if start, startErr = parseDate(e.Start); startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: invalid date format %q (expected YYYY-MM-DD or RFC3339)", prefix, e.Start))
		}
		if e.End == "" {
			errs = append(errs, fmt.Errorf("%s.end is required", prefix))
		} else if end, endErr = parseDate(e.End); endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: invalid date format %q (expected YYYY-MM-DD or RFC3339)", prefix, e.End))
		}
		if e.Start != "" && e.End != "" && startErr == nil && endErr == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end %q must be after start %q", prefix, e.End, e.Start))
		}

		if e.Category != "" && !validCategories[e.Category] {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, e.Category))
		}
	}

	return errs
}

// parseDate accepts either a bare date (midnight UTC) or a full RFC3339
// timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
