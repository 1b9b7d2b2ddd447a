package scheduler

import (
	"sort"
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
)

const (
	workHoursPerDay = 8.0

	// Project blocks are between half an hour and two hours long.
	maxProjectBlockHours = 2.0
	minProjectBlockHours = 0.5
)

// projectTargets computes each work project's target hours for the horizon:
// its allocation percentage of the total weekday work hours, capped at the
// project's remaining hour budget.
func projectTargets(projects []*domain.Project, start, end time.Time) map[string]float64 {
	totalWorkHours := workHoursPerDay * float64(weekdaysBetween(start, end))

	targets := make(map[string]float64, len(projects))
	for _, p := range projects {
		target := (p.AllocationPercentage / 100.0) * totalWorkHours
		if remaining := p.HoursRemaining(); remaining < target {
			target = remaining
		}
		targets[p.ID] = target
	}
	return targets
}

// weekdaysBetween counts Monday–Friday days in [start, end], inclusive.
func weekdaysBetween(start, end time.Time) int {
	count := 0
	for day := dateOf(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		if !isWeekend(day) {
			count++
		}
	}
	return count
}

type projectCandidate struct {
	project *domain.Project
	deficit float64
}

// scheduleWorkProjects greedily assigns slot capacity to the proportionally
// allocated projects furthest behind their targets. Each candidate receives
// at most one block per day; a slot too short for a half-hour block is put
// back unchanged for the next candidate.
func (e *Engine) scheduleWorkProjects(
	projects []*domain.Project,
	day time.Time,
	slots *interval.Queue,
	targets map[string]float64,
	sess *session,
) []domain.TimeBlock {
	candidates := make([]projectCandidate, 0, len(projects))
	for _, p := range projects {
		deficit := targets[p.ID] - sess.hoursPlaced[p.ID]
		if deficit > 0 && p.HoursRemaining() > 0 {
			candidates = append(candidates, projectCandidate{project: p, deficit: deficit})
		}
	}

	// Stable: equal deficits keep input order, for deterministic plans.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].deficit > candidates[j].deficit
	})

	var blocks []domain.TimeBlock
	for _, c := range candidates {
		slot, ok := slots.Pop()
		if !ok {
			break
		}

		blockHours := minFloat(
			maxProjectBlockHours,
			slot.Duration().Hours(),
			c.project.HoursRemaining(),
			c.deficit,
		)
		if blockHours < minProjectBlockHours {
			slots.PushFront(slot)
			continue
		}

		end := slot.Start.Add(hoursDuration(blockHours))
		blocks = append(blocks, domain.TimeBlock{
			TaskType: domain.TaskProject,
			TaskID:   c.project.ID,
			TaskName: c.project.Name,
			Start:    slot.Start,
			End:      end,
			Status:   domain.BlockScheduled,
		})
		sess.hoursPlaced[c.project.ID] += blockHours

		if slot.End.Sub(end) >= e.minBlock() {
			slots.PushFront(interval.Interval{Start: end, End: slot.End})
		}
	}
	return blocks
}

// scheduleAcademicProjects places document-parsed projects opportunistically
// in remaining personal-time slots. Same placement mechanics as work
// projects, but no allocation targets and no deficit tracking.
func (e *Engine) scheduleAcademicProjects(
	projects []*domain.Project,
	slots *interval.Queue,
) []domain.TimeBlock {
	var blocks []domain.TimeBlock
	for _, p := range projects {
		if p.HoursRemaining() <= 0 {
			continue
		}

		slot, ok := slots.Pop()
		if !ok {
			break
		}

		blockHours := minFloat(maxProjectBlockHours, slot.Duration().Hours(), p.HoursRemaining())
		if blockHours < minProjectBlockHours {
			slots.PushFront(slot)
			continue
		}

		end := slot.Start.Add(hoursDuration(blockHours))
		blocks = append(blocks, domain.TimeBlock{
			TaskType: domain.TaskProject,
			TaskID:   p.ID,
			TaskName: p.Name,
			Start:    slot.Start,
			End:      end,
			Status:   domain.BlockScheduled,
		})

		if slot.End.Sub(end) >= e.minBlock() {
			slots.PushFront(interval.Interval{Start: end, End: slot.End})
		}
	}
	return blocks
}

func minFloat(first float64, rest ...float64) float64 {
	min := first
	for _, v := range rest {
		if v < min {
			min = v
		}
	}
	return min
}

func hoursDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
