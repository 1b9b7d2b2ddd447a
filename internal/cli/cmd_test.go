package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockplan/internal/repository"
	"blockplan/internal/service"
	"blockplan/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The timing oracle is nil; the engine uses default windows.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteHouseholdTaskRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	blockRepo := repository.NewSQLiteTimeBlockRepo(database)
	configRepo := repository.NewSQLiteUserConfigRepo(database)

	return &App{
		Projects:    service.NewProjectService(projectRepo),
		Tasks:       service.NewTaskService(taskRepo),
		Assignments: service.NewAssignmentService(assignmentRepo),
		Events:      service.NewEventService(eventRepo),
		Config:      service.NewConfigService(configRepo),
		Import:      service.NewImportService(uow),
		Schedule: service.NewScheduleService(projectRepo, taskRepo, assignmentRepo,
			eventRepo, blockRepo, configRepo, uow, nil),
	}
}

func mustDateCLI(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := parseDateFlag(s)
	require.NoError(t, err)
	return d
}

// executeCmd runs a cobra command against the app and captures output.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	return root.Execute()
}

func TestProjectAddAndList(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "project", "add",
		"--name", "Thesis", "--hours", "120", "--allocation", "40", "--priority", "high")
	require.NoError(t, err)

	projects, err := app.Projects.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Thesis", projects[0].Name)
	assert.Equal(t, 40.0, projects[0].AllocationPercentage)
}

func TestProjectPauseByIDPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	p := testutil.NewProject("Thesis")
	require.NoError(t, app.Projects.Create(ctx, p))

	require.NoError(t, executeCmd(t, app, "project", "pause", p.ID[:8]))

	got, err := app.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestProjectLogRejectsUnknownID(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "project", "log", "deadbeef", "--hours", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTaskAddWithDays(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "task", "add",
		"--name", "Laundry", "--duration", "45", "--recurrence", "weekly",
		"--days", "saturday,sunday")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Len(t, tasks[0].PreferredDays, 2)
}

func TestTaskAddRejectsBadWeekday(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "task", "add", "--name", "Laundry", "--days", "caturday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid weekday "caturday"`)
}

func TestAssignmentAddAndDone(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	err := executeCmd(t, app, "assignment", "add",
		"--course", "Algorithms", "--name", "Problem set 3", "--due", "2026-03-13")
	require.NoError(t, err)

	open, err := app.Assignments.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, executeCmd(t, app, "assignment", "done", open[0].ID))

	open, err = app.Assignments.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestConfigSetWorkHours(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "config", "set", "--work-start", "9", "--work-end", "17")
	require.NoError(t, err)

	cfg, err := app.Config.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.WorkStartHour)
	assert.Equal(t, 17, cfg.WorkEndHour)
}

func TestConfigSetRejectsInvertedHours(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "config", "set", "--work-start", "18", "--work-end", "9")
	require.Error(t, err)
}

func TestScheduleGenerateDryRun(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, app.Projects.Create(ctx,
		testutil.NewProject("Thesis", testutil.WithAllocation(40))))

	err := executeCmd(t, app, "schedule", "generate",
		"--from", "2026-03-02", "--days", "5", "--dry-run")
	require.NoError(t, err)

	stored, err := app.Schedule.ListBlocks(ctx,
		mustDateCLI(t, "2026-03-02"), mustDateCLI(t, "2026-03-09"))
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestScheduleGeneratePersistsAndShows(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, app.Projects.Create(ctx,
		testutil.NewProject("Thesis", testutil.WithAllocation(40))))

	err := executeCmd(t, app, "schedule", "generate", "--from", "2026-03-02", "--days", "5")
	require.NoError(t, err)

	stored, err := app.Schedule.ListBlocks(ctx,
		mustDateCLI(t, "2026-03-02"), mustDateCLI(t, "2026-03-09"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored)

	require.NoError(t, executeCmd(t, app, "schedule", "show", "--from", "2026-03-02", "--days", "5"))
	require.NoError(t, executeCmd(t, app, "schedule", "confirm", stored[0].ID))
}
