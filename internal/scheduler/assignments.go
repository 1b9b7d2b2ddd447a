package scheduler

import (
	"sort"
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
)

const (
	maxAssignmentsPerDay = 2
	assignmentBlockHours = 2
	assignmentDueWindow  = 7 // days
)

// scheduleAssignments places up to two assignments due within the next week
// into fixed two-hour blocks, earliest due date first. A popped slot too
// short for a full block is consumed without producing one.
func (e *Engine) scheduleAssignments(
	assignments []*domain.Assignment,
	day time.Time,
	slots *interval.Queue,
) []domain.TimeBlock {
	var urgent []*domain.Assignment
	for _, a := range assignments {
		daysUntilDue := int(dateOf(a.DueDate).Sub(dateOf(day)).Hours() / 24)
		if daysUntilDue <= assignmentDueWindow {
			urgent = append(urgent, a)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].DueDate.Before(urgent[j].DueDate)
	})
	if len(urgent) > maxAssignmentsPerDay {
		urgent = urgent[:maxAssignmentsPerDay]
	}

	var blocks []domain.TimeBlock
	for _, a := range urgent {
		slot, ok := slots.Pop()
		if !ok {
			break
		}

		end := slot.Start.Add(assignmentBlockHours * time.Hour)
		if end.After(slot.End) {
			continue
		}

		blocks = append(blocks, domain.TimeBlock{
			TaskType: domain.TaskAssignment,
			TaskID:   a.ID,
			TaskName: a.Name,
			Start:    slot.Start,
			End:      end,
			Status:   domain.BlockScheduled,
		})

		if end.Before(slot.End) {
			slots.PushFront(interval.Interval{Start: end, End: slot.End})
		}
	}
	return blocks
}
