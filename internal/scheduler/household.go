package scheduler

import (
	"sort"
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
)

const (
	maxDailyTasksPerDay    = 2
	maxPeriodicTasksPerDay = 2
	maxHouseholdPerDay     = 4
)

// scheduleHousehold places household tasks for one day. Daily-recurrence
// tasks are eligible any day (max two); periodic tasks (weekly, biweekly,
// monthly, custom) are placed on weekends only, max two per weekend day,
// with at most four household blocks per day in total. Within each group,
// tasks with the tightest timing windows are placed first so
// time-constrained tasks claim slots before flexible ones.
func (e *Engine) scheduleHousehold(
	sess *session,
	tasks []*domain.HouseholdTask,
	day time.Time,
	slots *interval.Queue,
	weekend bool,
) []domain.TimeBlock {
	var daily, periodic []*domain.HouseholdTask
	for _, t := range tasks {
		if t.Recurrence == domain.RecurrenceDaily {
			daily = append(daily, t)
		} else {
			periodic = append(periodic, t)
		}
	}
	sortByTimingFlexibility(sess, daily)
	sortByTimingFlexibility(sess, periodic)

	var blocks []domain.TimeBlock
	slotIdx := 0

	for _, task := range daily {
		if !sess.shouldScheduleToday(task, day) {
			continue
		}
		if len(blocks) >= maxDailyTasksPerDay {
			break
		}
		if slotIdx >= slots.Len() {
			break
		}

		block, remainder, ok := e.placeHouseholdTask(sess, task, slots, slotIdx, day)
		if !ok {
			// Timing mismatch or no fit: leave the slot for the next task.
			continue
		}
		blocks = append(blocks, block)
		if remainder != nil {
			slots.Replace(slotIdx, *remainder)
		} else {
			slotIdx++
		}
	}

	if weekend {
		periodicToday := 0
		for _, task := range periodic {
			if !sess.shouldScheduleToday(task, day) {
				continue
			}
			if periodicToday >= maxPeriodicTasksPerDay {
				break
			}
			if len(blocks) >= maxHouseholdPerDay {
				break
			}
			if slotIdx >= slots.Len() {
				break
			}

			block, remainder, ok := e.placeHouseholdTask(sess, task, slots, slotIdx, day)
			if !ok {
				continue
			}
			blocks = append(blocks, block)
			periodicToday++
			if remainder != nil {
				slots.Replace(slotIdx, *remainder)
			} else {
				slotIdx++
			}
		}
	}

	return blocks
}

// placeHouseholdTask tries to place one task at the start of the slot at
// slotIdx. The slot's start hour must fall inside the task's timing window,
// and the task duration plus the household buffer must fit. The returned
// remainder (if any) is the slot tail left after the task and buffer; a
// tail shorter than the minimum block length is discarded.
func (e *Engine) placeHouseholdTask(
	sess *session,
	task *domain.HouseholdTask,
	slots *interval.Queue,
	slotIdx int,
	day time.Time,
) (domain.TimeBlock, *interval.Interval, bool) {
	slot, ok := slots.Peek(slotIdx)
	if !ok {
		return domain.TimeBlock{}, nil, false
	}

	timing := sess.timings[task.ID]
	if !timing.AllowsHour(slot.Start.Hour()) {
		return domain.TimeBlock{}, nil, false
	}

	duration := time.Duration(task.EstimatedDurationMinutes) * time.Minute
	buffer := time.Duration(e.cfg.HouseholdBufferMinutes) * time.Minute

	taskEnd := slot.Start.Add(duration)
	neededEnd := taskEnd.Add(buffer)
	if neededEnd.After(slot.End) {
		return domain.TimeBlock{}, nil, false
	}

	block := domain.TimeBlock{
		TaskType: domain.TaskHousehold,
		TaskID:   task.ID,
		TaskName: task.Name,
		Start:    slot.Start,
		End:      taskEnd,
		Status:   domain.BlockScheduled,
	}
	sess.lastScheduled[task.ID] = dateOf(day)

	var remainder *interval.Interval
	if slot.End.Sub(neededEnd) >= e.minBlock() {
		remainder = &interval.Interval{Start: neededEnd, End: slot.End}
	}
	return block, remainder, true
}

// sortByTimingFlexibility orders tasks by ascending timing-window size.
// Stable so equally flexible tasks keep their input order.
func sortByTimingFlexibility(sess *session, tasks []*domain.HouseholdTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return sess.timings[tasks[i].ID].WindowHours() < sess.timings[tasks[j].ID].WindowHours()
	})
}
