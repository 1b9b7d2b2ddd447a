package scheduler

import (
	"context"
	"time"

	"blockplan/internal/domain"
)

// TimingOracle maps a task's name and description to its preferred hour
// window. Implementations may call out to an LLM; the engine treats any
// error or invalid result as "use the fallback window".
type TimingOracle interface {
	Analyze(ctx context.Context, taskName, description string) (domain.TaskTiming, error)
}

// session holds all mutable state for a single scheduling run: the timing
// cache, the per-task last-scheduled dates driving recurrence admission,
// and the per-project hours placed against allocation targets. A fresh
// session is built per GenerateSchedule call and discarded afterwards;
// nothing is shared across runs.
type session struct {
	timings       map[string]domain.TaskTiming
	lastScheduled map[string]time.Time
	hoursPlaced   map[string]float64
}

func newSession() *session {
	return &session{
		timings:       make(map[string]domain.TaskTiming),
		lastScheduled: make(map[string]time.Time),
		hoursPlaced:   make(map[string]float64),
	}
}

// resolveTiming returns the cached timing for the task, consulting the
// oracle at most once per task id per run. Oracle failure, an invalid
// window, or a nil oracle all degrade to the default window; a timing
// lookup must never abort scheduling.
func (s *session) resolveTiming(ctx context.Context, oracle TimingOracle, task *domain.HouseholdTask) domain.TaskTiming {
	if timing, ok := s.timings[task.ID]; ok {
		return timing
	}

	timing := domain.DefaultTiming()
	if oracle != nil {
		if got, err := oracle.Analyze(ctx, task.Name, task.Description); err == nil {
			if got.Validate() == nil {
				timing = got
			}
		}
	}

	s.timings[task.ID] = timing
	return timing
}
