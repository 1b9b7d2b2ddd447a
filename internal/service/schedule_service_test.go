package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockplan/internal/domain"
	"blockplan/internal/testutil"
)

func seedScheduleInputs(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.projects.Create(ctx,
		testutil.NewProject("Thesis", testutil.WithAllocation(40), testutil.WithHourBudget(100, 0))))
	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewHouseholdTask("Dishes", testutil.WithRecurrence(domain.RecurrenceDaily), testutil.WithDuration(20))))
	require.NoError(t, env.assignments.Create(ctx,
		testutil.NewAssignment("Problem set", mustDate(t, "2026-03-05"))))
}

func TestScheduleService_GeneratePersists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedScheduleInputs(t, env)

	monday := mustDate(t, "2026-03-02")
	friday := mustDate(t, "2026-03-06")

	blocks, err := env.schedule.Generate(ctx, monday, friday, true)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)

	for _, b := range blocks {
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, domain.BlockScheduled, b.Status)
		assert.False(t, b.CreatedAt.IsZero())
	}

	stored, err := env.schedule.ListBlocks(ctx, monday, friday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, stored, len(blocks))
}

func TestScheduleService_GenerateWithoutPersist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedScheduleInputs(t, env)

	monday := mustDate(t, "2026-03-02")
	friday := mustDate(t, "2026-03-06")

	blocks, err := env.schedule.Generate(ctx, monday, friday, false)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)

	stored, err := env.schedule.ListBlocks(ctx, monday, friday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestScheduleService_ReplanPreservesConfirmed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedScheduleInputs(t, env)

	monday := mustDate(t, "2026-03-02")
	friday := mustDate(t, "2026-03-06")

	first, err := env.schedule.Generate(ctx, monday, friday, true)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	confirmedID := first[0].ID
	require.NoError(t, env.schedule.UpdateBlockStatus(ctx, confirmedID, domain.BlockConfirmed))

	second, err := env.schedule.Generate(ctx, monday, friday, true)
	require.NoError(t, err)

	// The replan treats the confirmed block's time as occupied.
	for _, b := range second {
		overlap := b.Start.Before(first[0].End) && b.End.After(first[0].Start)
		assert.False(t, overlap, "new block %s overlaps the confirmed block", b.TaskName)
	}

	stored, err := env.schedule.ListBlocks(ctx, monday, friday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, stored, len(second)+1)

	found := false
	for _, b := range stored {
		if b.ID == confirmedID {
			found = true
			assert.Equal(t, domain.BlockConfirmed, b.Status)
		}
	}
	assert.True(t, found, "confirmed block should survive the replan")
}

func TestScheduleService_UpdateBlockStatusRejectsUnknown(t *testing.T) {
	env := newTestEnv(t)

	err := env.schedule.UpdateBlockStatus(context.Background(), "some-id", "postponed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid block status "postponed"`)
}

func TestScheduleService_AvoidsEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedScheduleInputs(t, env)

	// Block out the whole Monday working day.
	monday := mustDate(t, "2026-03-02")
	require.NoError(t, env.events.Create(ctx, testutil.NewEvent("Offsite",
		monday.Add(7*time.Hour), monday.Add(23*time.Hour))))

	blocks, err := env.schedule.Generate(ctx, monday, monday, false)
	require.NoError(t, err)
	for _, b := range blocks {
		overlap := b.Start.Before(monday.Add(23*time.Hour)) && b.End.After(monday.Add(7*time.Hour))
		assert.False(t, overlap, "block %s [%s, %s) overlaps the offsite", b.TaskName, b.Start, b.End)
	}
	assert.Empty(t, blocks)
}
