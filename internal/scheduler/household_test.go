package scheduler

import (
	"context"
	"errors"
	"testing"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOracle is a canned TimingOracle keyed by task name.
type stubOracle struct {
	timings map[string]domain.TaskTiming
	err     error
	calls   map[string]int
}

func newStubOracle() *stubOracle {
	return &stubOracle{
		timings: make(map[string]domain.TaskTiming),
		calls:   make(map[string]int),
	}
}

func (o *stubOracle) Analyze(_ context.Context, taskName, _ string) (domain.TaskTiming, error) {
	o.calls[taskName]++
	if o.err != nil {
		return domain.TaskTiming{}, o.err
	}
	if timing, ok := o.timings[taskName]; ok {
		return timing, nil
	}
	return domain.DefaultTiming(), nil
}

func householdTask(id, name string, durationMin int, rec domain.Recurrence) *domain.HouseholdTask {
	return &domain.HouseholdTask{
		ID:                       id,
		Name:                     name,
		EstimatedDurationMinutes: durationMin,
		Recurrence:               rec,
		IsActive:                 true,
	}
}

func resolveAll(t *testing.T, sess *session, oracle TimingOracle, tasks ...*domain.HouseholdTask) {
	t.Helper()
	for _, task := range tasks {
		sess.resolveTiming(context.Background(), oracle, task)
	}
}

func TestScheduleHousehold_PlacesDailyTaskWithBuffer(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	dishes := householdTask("h1", "Dishes", 30, domain.RecurrenceDaily)
	vacuum := householdTask("h2", "Vacuum", 45, domain.RecurrenceDaily)
	resolveAll(t, sess, nil, dishes, vacuum)

	slots := interval.NewQueue([]interval.Interval{ivOn(saturday, 9, 0, 12, 0)})
	blocks := e.scheduleHousehold(sess, []*domain.HouseholdTask{dishes, vacuum}, saturday, slots, true)

	require.Len(t, blocks, 2)
	assert.Equal(t, hourOn(saturday, 9, 0), blocks[0].Start)
	assert.Equal(t, hourOn(saturday, 9, 30), blocks[0].End)
	// Second task starts after the 15-minute household buffer.
	assert.Equal(t, hourOn(saturday, 9, 45), blocks[1].Start)
	assert.Equal(t, hourOn(saturday, 10, 30), blocks[1].End)
}

func TestScheduleHousehold_TimingWindowRejectsEveningSlot(t *testing.T) {
	e := testEngine(t, nil)
	oracle := newStubOracle()
	oracle.timings["Breakfast dishes"] = domain.TaskTiming{
		Preferred: domain.PreferMorning, EarliestHour: 7, LatestHour: 14, Reasoning: "after breakfast",
	}
	sess := newSession()
	task := householdTask("h1", "Breakfast dishes", 20, domain.RecurrenceDaily)
	resolveAll(t, sess, oracle, task)

	// A free evening slot starting at 18:00 must be rejected.
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 18, 0, 20, 0)})
	blocks := e.scheduleHousehold(sess, []*domain.HouseholdTask{task}, monday, slots, false)
	assert.Empty(t, blocks)

	// A morning slot on a weekend day is fine.
	slots = interval.NewQueue([]interval.Interval{ivOn(saturday, 9, 0, 10, 0)})
	blocks = e.scheduleHousehold(sess, []*domain.HouseholdTask{task}, saturday, slots, true)
	require.Len(t, blocks, 1)
	assert.Equal(t, hourOn(saturday, 9, 0), blocks[0].Start)
}

func TestScheduleHousehold_TightestWindowFirst(t *testing.T) {
	e := testEngine(t, nil)
	oracle := newStubOracle()
	oracle.timings["Flexible"] = domain.TaskTiming{
		Preferred: domain.PreferAnytime, EarliestHour: 9, LatestHour: 21, Reasoning: "anytime",
	}
	oracle.timings["Morning only"] = domain.TaskTiming{
		Preferred: domain.PreferMorning, EarliestHour: 9, LatestHour: 11, Reasoning: "mornings",
	}
	sess := newSession()
	flexible := householdTask("h1", "Flexible", 60, domain.RecurrenceDaily)
	constrained := householdTask("h2", "Morning only", 60, domain.RecurrenceDaily)
	resolveAll(t, sess, oracle, flexible, constrained)

	slots := interval.NewQueue([]interval.Interval{ivOn(saturday, 9, 0, 12, 0)})
	blocks := e.scheduleHousehold(sess, []*domain.HouseholdTask{flexible, constrained}, saturday, slots, true)

	require.Len(t, blocks, 2)
	assert.Equal(t, "h2", blocks[0].TaskID, "time-constrained task claims the morning slot first")
	assert.Equal(t, "h1", blocks[1].TaskID)
}

func TestScheduleHousehold_PeriodicOnlyOnWeekends(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	laundry := householdTask("h1", "Laundry", 60, domain.RecurrenceWeekly)
	resolveAll(t, sess, nil, laundry)

	weekdaySlots := interval.NewQueue([]interval.Interval{ivOn(monday, 19, 0, 21, 0)})
	assert.Empty(t, e.scheduleHousehold(sess, []*domain.HouseholdTask{laundry}, monday, weekdaySlots, false))

	weekendSlots := interval.NewQueue([]interval.Interval{ivOn(saturday, 9, 0, 12, 0)})
	blocks := e.scheduleHousehold(sess, []*domain.HouseholdTask{laundry}, saturday, weekendSlots, true)
	assert.Len(t, blocks, 1)
}

func TestScheduleHousehold_WeekendDayLimits(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	var tasks []*domain.HouseholdTask
	for _, task := range []*domain.HouseholdTask{
		householdTask("d1", "Daily one", 30, domain.RecurrenceDaily),
		householdTask("d2", "Daily two", 30, domain.RecurrenceDaily),
		householdTask("d3", "Daily three", 30, domain.RecurrenceDaily),
		householdTask("p1", "Weekly one", 30, domain.RecurrenceWeekly),
		householdTask("p2", "Weekly two", 30, domain.RecurrenceWeekly),
		householdTask("p3", "Weekly three", 30, domain.RecurrenceWeekly),
	} {
		tasks = append(tasks, task)
	}
	resolveAll(t, sess, nil, tasks...)

	slots := interval.NewQueue([]interval.Interval{ivOn(saturday, 9, 0, 12, 0), ivOn(saturday, 13, 0, 18, 0)})
	blocks := e.scheduleHousehold(sess, tasks, saturday, slots, true)

	require.Len(t, blocks, 4, "two daily + two periodic is the weekend cap")
	daily, periodic := 0, 0
	for _, b := range blocks {
		switch b.TaskID[0] {
		case 'd':
			daily++
		case 'p':
			periodic++
		}
	}
	assert.Equal(t, 2, daily)
	assert.Equal(t, 2, periodic)
}

func TestResolveTiming_CachesAndFallsBack(t *testing.T) {
	oracle := newStubOracle()
	oracle.timings["Dishes"] = domain.TaskTiming{
		Preferred: domain.PreferEvening, EarliestHour: 18, LatestHour: 21, Reasoning: "after dinner",
	}
	sess := newSession()
	task := householdTask("h1", "Dishes", 30, domain.RecurrenceDaily)

	first := sess.resolveTiming(context.Background(), oracle, task)
	second := sess.resolveTiming(context.Background(), oracle, task)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, oracle.calls["Dishes"], "one oracle call per task id per run")
	assert.Equal(t, domain.PreferEvening, first.Preferred)
}

func TestResolveTiming_OracleErrorUsesDefault(t *testing.T) {
	oracle := newStubOracle()
	oracle.err = errors.New("model unavailable")
	sess := newSession()
	task := householdTask("h1", "Dishes", 30, domain.RecurrenceDaily)

	timing := sess.resolveTiming(context.Background(), oracle, task)
	assert.Equal(t, domain.DefaultTiming(), timing)
}

func TestResolveTiming_InvalidWindowUsesDefault(t *testing.T) {
	oracle := newStubOracle()
	oracle.timings["Dishes"] = domain.TaskTiming{
		Preferred: domain.PreferMorning, EarliestHour: 15, LatestHour: 9, Reasoning: "inverted",
	}
	sess := newSession()
	task := householdTask("h1", "Dishes", 30, domain.RecurrenceDaily)

	timing := sess.resolveTiming(context.Background(), oracle, task)
	assert.Equal(t, domain.DefaultTiming(), timing)
}
