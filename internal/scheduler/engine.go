// Package scheduler implements the time-block allocation engine: day-by-day
// free-slot generation, recurrence admission for household tasks, and
// deficit-driven greedy assignment of project hours against proportional
// allocation targets. The engine is a greedy, explainable heuristic; it
// performs no I/O and persists nothing.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
)

// Snapshot is the read-only input set for one scheduling run, loaded by the
// caller from persistence.
type Snapshot struct {
	Projects       []*domain.Project
	Assignments    []*domain.Assignment
	HouseholdTasks []*domain.HouseholdTask
	Events         []*domain.ExternalEvent
}

// Engine generates conflict-free time-block schedules. Safe to reuse across
// runs: all per-run state lives in a session constructed inside
// GenerateSchedule.
type Engine struct {
	cfg    domain.UserConfig
	oracle TimingOracle
}

// NewEngine validates the config and builds an engine. The oracle may be
// nil, in which case every task uses the default timing window.
func NewEngine(cfg domain.UserConfig, oracle TimingOracle) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user config: %w", err)
	}
	return &Engine{cfg: cfg, oracle: oracle}, nil
}

// GenerateSchedule produces the ordered list of scheduled blocks for every
// day in [start, end], inclusive. Weekdays place assignments, academic
// projects, and household tasks in evening personal time, then work
// projects in a separate work-hours pool; weekends place household tasks
// first and let work projects use whatever personal time remains.
func (e *Engine) GenerateSchedule(ctx context.Context, snap Snapshot, start, end time.Time) ([]domain.TimeBlock, error) {
	startDay := dateOf(start)
	endDay := dateOf(end)
	if startDay.After(endDay) {
		return nil, fmt.Errorf("start date %s is after end date %s",
			startDay.Format("2006-01-02"), endDay.Format("2006-01-02"))
	}

	sess := newSession()

	// Resolve timing once per distinct task up front; results are cached
	// for the whole run.
	for _, task := range snap.HouseholdTasks {
		sess.resolveTiming(ctx, e.oracle, task)
	}

	var workProjects, academicProjects []*domain.Project
	for _, p := range snap.Projects {
		if p.IsAcademic() {
			academicProjects = append(academicProjects, p)
		} else {
			workProjects = append(workProjects, p)
		}
	}

	targets := projectTargets(workProjects, startDay, endDay)

	var blocks []domain.TimeBlock
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		blocks = append(blocks, e.scheduleDay(sess, snap, day, workProjects, academicProjects, targets)...)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})
	return blocks, nil
}

// scheduleDay runs the daily passes in priority order. All personal-time
// passes share one progressively shrinking slot pool; the weekday work
//-project pass draws from its own independently generated work-hours pool.
func (e *Engine) scheduleDay(
	sess *session,
	snap Snapshot,
	day time.Time,
	workProjects, academicProjects []*domain.Project,
	targets map[string]float64,
) []domain.TimeBlock {
	personal := e.daySlots(day, snap.Events, modePersonal)

	var dayBlocks []domain.TimeBlock
	if !isWeekend(day) {
		assignmentBlocks := e.scheduleAssignments(snap.Assignments, day, interval.NewQueue(personal))
		dayBlocks = append(dayBlocks, assignmentBlocks...)

		remaining := interval.Subtract(personal, blockIntervals(assignmentBlocks))
		academicBlocks := e.scheduleAcademicProjects(academicProjects, interval.NewQueue(remaining))
		dayBlocks = append(dayBlocks, academicBlocks...)

		remaining = interval.Subtract(remaining, blockIntervals(academicBlocks))
		dayBlocks = append(dayBlocks,
			e.scheduleHousehold(sess, snap.HouseholdTasks, day, interval.NewQueue(remaining), false)...)

		workSlots := e.daySlots(day, snap.Events, modeWork)
		dayBlocks = append(dayBlocks,
			e.scheduleWorkProjects(workProjects, day, interval.NewQueue(workSlots), targets, sess)...)
		return dayBlocks
	}

	householdBlocks := e.scheduleHousehold(sess, snap.HouseholdTasks, day, interval.NewQueue(personal), true)
	dayBlocks = append(dayBlocks, householdBlocks...)

	remaining := interval.Subtract(personal, blockIntervals(householdBlocks))
	assignmentBlocks := e.scheduleAssignments(snap.Assignments, day, interval.NewQueue(remaining))
	dayBlocks = append(dayBlocks, assignmentBlocks...)

	remaining = interval.Subtract(remaining, blockIntervals(assignmentBlocks))
	academicBlocks := e.scheduleAcademicProjects(academicProjects, interval.NewQueue(remaining))
	dayBlocks = append(dayBlocks, academicBlocks...)

	// No separate work-hours pool exists on weekends: work projects take
	// whatever personal time the earlier passes left over.
	remaining = interval.Subtract(remaining, blockIntervals(academicBlocks))
	dayBlocks = append(dayBlocks,
		e.scheduleWorkProjects(workProjects, day, interval.NewQueue(remaining), targets, sess)...)
	return dayBlocks
}

func (e *Engine) minBlock() time.Duration {
	return time.Duration(e.cfg.MinBlockMinutes) * time.Minute
}

// blockIntervals converts placed blocks into blocking intervals for slot
// subtraction.
func blockIntervals(blocks []domain.TimeBlock) []interval.Interval {
	out := make([]interval.Interval, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, interval.Interval{Start: b.Start, End: b.End})
	}
	return out
}
