package scheduler

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchedule_StartAfterEnd(t *testing.T) {
	e := testEngine(t, nil)
	_, err := e.GenerateSchedule(context.Background(), Snapshot{}, friday, monday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after end date")
}

func TestGenerateSchedule_EmptySnapshot(t *testing.T) {
	e := testEngine(t, nil)
	blocks, err := e.GenerateSchedule(context.Background(), Snapshot{}, monday, sunday)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestGenerateSchedule_AllocationMetOverWeek(t *testing.T) {
	e := testEngine(t, nil)
	snap := Snapshot{Projects: []*domain.Project{workProject("p1", 25, 100, 0)}}

	blocks, err := e.GenerateSchedule(context.Background(), snap, monday, friday)
	require.NoError(t, err)

	// 25% of 5 weekdays at 8 hours each is exactly 10 hours.
	var total float64
	for _, b := range blocks {
		assert.Equal(t, "p1", b.TaskID)
		assert.LessOrEqual(t, b.Duration().Hours(), 2.0)
		assert.GreaterOrEqual(t, b.Duration().Hours(), 0.5)
		total += b.Duration().Hours()
	}
	assert.InDelta(t, 10.0, total, 1e-9, "never schedules past the allocation target")
}

func TestGenerateSchedule_DeficitSpillsToWeekend(t *testing.T) {
	e := testEngine(t, nil)
	// 50% of 40 weekday hours is a 20-hour target; one two-hour block per
	// weekday leaves a 10-hour deficit going into Saturday.
	snap := Snapshot{Projects: []*domain.Project{workProject("p1", 50, 100, 0)}}

	blocks, err := e.GenerateSchedule(context.Background(), snap, monday, saturday)
	require.NoError(t, err)

	var saturdayHours float64
	for _, b := range blocks {
		if sameDate(b.Start, saturday) {
			saturdayHours += b.Duration().Hours()
		}
	}
	assert.Greater(t, saturdayHours, 0.0, "behind-target projects use weekend personal time")
}

func TestGenerateSchedule_MorningTaskWaitsForWeekend(t *testing.T) {
	oracle := newStubOracle()
	oracle.timings["Breakfast dishes"] = domain.TaskTiming{
		Preferred: domain.PreferMorning, EarliestHour: 7, LatestHour: 14, Reasoning: "after breakfast",
	}
	e := testEngine(t, oracle)
	snap := Snapshot{HouseholdTasks: []*domain.HouseholdTask{
		householdTask("h1", "Breakfast dishes", 20, domain.RecurrenceDaily),
	}}

	// Weekday personal time is evening-only, outside the morning window.
	blocks, err := e.GenerateSchedule(context.Background(), snap, monday, saturday)
	require.NoError(t, err)

	require.Len(t, blocks, 1)
	assert.True(t, sameDate(blocks[0].Start, saturday))
	assert.Less(t, blocks[0].Start.Hour(), 14)
}

func TestGenerateSchedule_OracleCalledOncePerTask(t *testing.T) {
	oracle := newStubOracle()
	e := testEngine(t, oracle)
	snap := Snapshot{HouseholdTasks: []*domain.HouseholdTask{
		householdTask("h1", "Dishes", 30, domain.RecurrenceDaily),
		householdTask("h2", "Laundry", 60, domain.RecurrenceWeekly),
	}}

	_, err := e.GenerateSchedule(context.Background(), snap, monday, sunday)
	require.NoError(t, err)

	assert.Equal(t, 1, oracle.calls["Dishes"])
	assert.Equal(t, 1, oracle.calls["Laundry"])
}

func TestGenerateSchedule_OracleFailureStillSchedules(t *testing.T) {
	oracle := newStubOracle()
	oracle.err = errors.New("connection refused")
	e := testEngine(t, oracle)
	snap := Snapshot{HouseholdTasks: []*domain.HouseholdTask{
		householdTask("h1", "Dishes", 30, domain.RecurrenceDaily),
	}}

	blocks, err := e.GenerateSchedule(context.Background(), snap, saturday, saturday)
	require.NoError(t, err)
	require.NotEmpty(t, blocks, "default timing window applies when the analyzer is down")
}

func TestGenerateSchedule_WeeklyRecurrenceGap(t *testing.T) {
	e := testEngine(t, nil)
	snap := Snapshot{HouseholdTasks: []*domain.HouseholdTask{
		householdTask("h1", "Laundry", 60, domain.RecurrenceWeekly),
	}}

	end := saturday.AddDate(0, 0, 15) // three weekends
	blocks, err := e.GenerateSchedule(context.Background(), snap, saturday, end)
	require.NoError(t, err)

	require.Len(t, blocks, 3)
	for i := 1; i < len(blocks); i++ {
		gap := dateOf(blocks[i].Start).Sub(dateOf(blocks[i-1].Start))
		assert.GreaterOrEqual(t, gap, 7*24*time.Hour)
	}
}

func TestGenerateSchedule_ChronologicalOutput(t *testing.T) {
	e := testEngine(t, nil)
	due := friday
	snap := Snapshot{
		Projects: []*domain.Project{workProject("p1", 50, 100, 0)},
		Assignments: []*domain.Assignment{
			{ID: "a1", CourseID: "c1", Name: "Problem set", DueDate: due},
		},
		HouseholdTasks: []*domain.HouseholdTask{
			householdTask("h1", "Dishes", 30, domain.RecurrenceDaily),
		},
	}

	blocks, err := e.GenerateSchedule(context.Background(), snap, monday, sunday)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	for i := 1; i < len(blocks); i++ {
		assert.False(t, blocks[i].Start.Before(blocks[i-1].Start))
	}
}

// TestGenerateSchedule_NoOverlaps fuzzes snapshots and checks the structural
// guarantees: no two blocks overlap, no block overlaps an external event on
// its day, and every block avoids the fixed life-necessity windows.
func TestGenerateSchedule_NoOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 50; trial++ {
		e := testEngine(t, nil)
		snap := randomSnapshot(rng)
		end := monday.AddDate(0, 0, rng.Intn(14))

		blocks, err := e.GenerateSchedule(context.Background(), snap, monday, end)
		require.NoError(t, err)

		for i := 0; i < len(blocks); i++ {
			bi := interval.Interval{Start: blocks[i].Start, End: blocks[i].End}
			for j := i + 1; j < len(blocks); j++ {
				bj := interval.Interval{Start: blocks[j].Start, End: blocks[j].End}
				assert.False(t, bi.Overlaps(bj),
					"trial %d: blocks %v and %v overlap", trial, bi, bj)
			}
			for _, ev := range snap.Events {
				assert.False(t, bi.Overlaps(interval.Interval{Start: ev.Start, End: ev.End}),
					"trial %d: block %v overlaps event %q", trial, bi, ev.Title)
			}
			for _, life := range lifeNecessityBlocks(blocks[i].Start) {
				assert.False(t, bi.Overlaps(life),
					"trial %d: block %v overlaps life necessity %v", trial, bi, life)
			}
		}
	}
}

func randomSnapshot(rng *rand.Rand) Snapshot {
	var snap Snapshot

	for i := 0; i < rng.Intn(4); i++ {
		snap.Projects = append(snap.Projects,
			workProject(string(rune('a'+i)), float64(10+rng.Intn(40)), float64(5+rng.Intn(60)), 0))
	}
	for i := 0; i < rng.Intn(3); i++ {
		snap.Assignments = append(snap.Assignments, &domain.Assignment{
			ID:       string(rune('m'+i)),
			CourseID: "course",
			Name:     "Assignment",
			DueDate:  monday.AddDate(0, 0, rng.Intn(10)),
		})
	}
	for i := 0; i < rng.Intn(4); i++ {
		rec := domain.RecurrenceDaily
		if rng.Intn(2) == 0 {
			rec = domain.RecurrenceWeekly
		}
		snap.HouseholdTasks = append(snap.HouseholdTasks,
			householdTask(string(rune('s'+i)), "Chore", 15+rng.Intn(60), rec))
	}
	for i := 0; i < rng.Intn(3); i++ {
		day := monday.AddDate(0, 0, rng.Intn(14))
		startHour := 8 + rng.Intn(10)
		snap.Events = append(snap.Events, &domain.ExternalEvent{
			ID:       string(rune('x' + i)),
			Title:    "Meeting",
			Start:    hourOn(day, startHour, 0),
			End:      hourOn(day, startHour+1, 0),
			Category: "work",
		})
	}
	return snap
}
