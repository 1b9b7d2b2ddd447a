package scheduler

import (
	"testing"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workProject(id string, allocation, total, used float64) *domain.Project {
	return &domain.Project{
		ID:                   id,
		Name:                 "Project " + id,
		AllocationPercentage: allocation,
		TotalHoursAllocated:  total,
		HoursUsed:            used,
		IsActive:             true,
		SourceAdapter:        domain.SourceManual,
	}
}

func TestWeekdaysBetween(t *testing.T) {
	assert.Equal(t, 5, weekdaysBetween(monday, friday))
	assert.Equal(t, 5, weekdaysBetween(monday, sunday), "weekend days do not count")
	assert.Equal(t, 1, weekdaysBetween(monday, monday))
	assert.Equal(t, 0, weekdaysBetween(saturday, sunday))
}

func TestProjectTargets_ProportionalShare(t *testing.T) {
	p := workProject("p1", 25, 100, 0)

	targets := projectTargets([]*domain.Project{p}, monday, friday)

	// 5 weekdays × 8 h = 40 h; 25% → 10 h.
	assert.InDelta(t, 10.0, targets["p1"], 1e-9)
}

func TestProjectTargets_CappedByRemainingBudget(t *testing.T) {
	p := workProject("p1", 50, 10, 7)

	targets := projectTargets([]*domain.Project{p}, monday, friday)

	// 50% of 40 h would be 20 h, but only 3 h remain on the budget.
	assert.InDelta(t, 3.0, targets["p1"], 1e-9)
}

func TestScheduleWorkProjects_TwoHourChunksAndTracking(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	p := workProject("p1", 25, 100, 0)
	targets := map[string]float64{"p1": 10}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 9, 0, 12, 0)})

	blocks := e.scheduleWorkProjects([]*domain.Project{p}, monday, slots, targets, sess)

	require.Len(t, blocks, 1)
	assert.Equal(t, ivOn(monday, 9, 0, 11, 0).Start, blocks[0].Start)
	assert.Equal(t, ivOn(monday, 9, 0, 11, 0).End, blocks[0].End, "chunk is capped at two hours")
	assert.Equal(t, domain.TaskProject, blocks[0].TaskType)
	assert.Equal(t, domain.BlockScheduled, blocks[0].Status)
	assert.InDelta(t, 2.0, sess.hoursPlaced["p1"], 1e-9)

	// The slot remainder went back on the queue.
	remaining := slots.Slots()
	require.Len(t, remaining, 1)
	assert.Equal(t, ivOn(monday, 11, 0, 12, 0), remaining[0])
}

func TestScheduleWorkProjects_FurthestBehindFirst(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	behind := workProject("behind", 50, 100, 0)
	ahead := workProject("ahead", 25, 100, 0)
	sess.hoursPlaced["ahead"] = 1
	targets := map[string]float64{"behind": 20, "ahead": 10}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 9, 0, 11, 0)})

	blocks := e.scheduleWorkProjects([]*domain.Project{ahead, behind}, monday, slots, targets, sess)

	require.Len(t, blocks, 1, "one slot, so only the neediest project is placed")
	assert.Equal(t, "behind", blocks[0].TaskID)
}

func TestScheduleWorkProjects_StableTiesKeepInputOrder(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	first := workProject("first", 25, 100, 0)
	second := workProject("second", 25, 100, 0)
	targets := map[string]float64{"first": 10, "second": 10}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 9, 0, 10, 0)})

	blocks := e.scheduleWorkProjects([]*domain.Project{first, second}, monday, slots, targets, sess)

	require.Len(t, blocks, 1)
	assert.Equal(t, "first", blocks[0].TaskID, "equal deficits resolve by input order")
}

func TestScheduleWorkProjects_SkipsExhaustedAndCaughtUp(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	exhausted := workProject("spent", 50, 10, 10)
	caughtUp := workProject("done", 25, 100, 0)
	sess.hoursPlaced["done"] = 10
	targets := map[string]float64{"spent": 5, "done": 10}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 9, 0, 12, 0)})

	blocks := e.scheduleWorkProjects([]*domain.Project{exhausted, caughtUp}, monday, slots, targets, sess)
	assert.Empty(t, blocks)
}

func TestScheduleWorkProjects_TinySliverPutBackForNextCandidate(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	// "tiny" is almost caught up: its residual deficit is below the
	// half-hour minimum, so the slot must pass to "hungry" untouched.
	tiny := workProject("tiny", 25, 100, 0)
	hungry := workProject("hungry", 25, 100, 0)
	sess.hoursPlaced["tiny"] = 9.75
	targets := map[string]float64{"tiny": 10, "hungry": 10}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 9, 0, 11, 0)})

	blocks := e.scheduleWorkProjects([]*domain.Project{tiny, hungry}, monday, slots, targets, sess)

	require.Len(t, blocks, 1)
	assert.Equal(t, "hungry", blocks[0].TaskID)
	assert.Equal(t, hourOn(monday, 9, 0), blocks[0].Start, "slot was returned unchanged")
}

func TestScheduleWorkProjects_DeficitCapsBlockLength(t *testing.T) {
	e := testEngine(t, nil)
	sess := newSession()
	p := workProject("p1", 25, 100, 0)
	sess.hoursPlaced["p1"] = 9 // 1 h deficit left
	targets := map[string]float64{"p1": 10}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 9, 0, 12, 0)})

	blocks := e.scheduleWorkProjects([]*domain.Project{p}, monday, slots, targets, sess)

	require.Len(t, blocks, 1)
	assert.Equal(t, hourOn(monday, 10, 0), blocks[0].End, "block shrinks to the remaining deficit")
}

func TestScheduleAcademicProjects_NoDeficitTracking(t *testing.T) {
	e := testEngine(t, nil)
	academic := &domain.Project{
		ID:                  "a1",
		Name:                "Thesis",
		TotalHoursAllocated: 40,
		SourceAdapter:       domain.SourceDocumentParser,
		IsActive:            true,
	}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 19, 0, 21, 0)})

	blocks := e.scheduleAcademicProjects([]*domain.Project{academic}, slots)

	require.Len(t, blocks, 1)
	assert.Equal(t, hourOn(monday, 19, 0), blocks[0].Start)
	assert.Equal(t, hourOn(monday, 21, 0), blocks[0].End)
}

func TestScheduleAcademicProjects_SkipsExhaustedBudget(t *testing.T) {
	e := testEngine(t, nil)
	spent := &domain.Project{
		ID:                  "a1",
		Name:                "Old course",
		TotalHoursAllocated: 10,
		HoursUsed:           10,
		SourceAdapter:       domain.SourceDocumentParser,
	}
	slots := interval.NewQueue([]interval.Interval{ivOn(monday, 19, 0, 21, 0)})

	assert.Empty(t, e.scheduleAcademicProjects([]*domain.Project{spent}, slots))
}
