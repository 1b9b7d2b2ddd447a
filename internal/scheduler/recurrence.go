package scheduler

import (
	"time"

	"blockplan/internal/domain"
)

// recurrenceThresholdDays returns the minimum gap in days before a task
// with the given recurrence may be scheduled again. Custom and any
// unrecognized recurrence fall back to weekly cadence; cron-style custom
// expressions are deliberately not evaluated.
func recurrenceThresholdDays(r domain.Recurrence) int {
	switch r {
	case domain.RecurrenceDaily:
		return 1
	case domain.RecurrenceWeekly:
		return 7
	case domain.RecurrenceBiweekly:
		return 14
	case domain.RecurrenceMonthly:
		return 30
	default:
		return 7
	}
}

// shouldScheduleToday decides whether the task is eligible on the given
// day. A task never scheduled in this session is always eligible.
func (s *session) shouldScheduleToday(task *domain.HouseholdTask, day time.Time) bool {
	last, ok := s.lastScheduled[task.ID]
	if !ok {
		return true
	}
	daysSince := int(day.Sub(last).Hours() / 24)
	return daysSince >= recurrenceThresholdDays(task.Recurrence)
}
