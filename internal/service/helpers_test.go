package service

import (
	"testing"
	"time"

	"blockplan/internal/repository"
	"blockplan/internal/testutil"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

type testEnv struct {
	projects    ProjectService
	tasks       TaskService
	assignments AssignmentService
	events      EventService
	config      ConfigService
	importSvc   ImportService
	schedule    ScheduleService

	projectRepo repository.ProjectRepo
	blockRepo   repository.TimeBlockRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteHouseholdTaskRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	blockRepo := repository.NewSQLiteTimeBlockRepo(database)
	configRepo := repository.NewSQLiteUserConfigRepo(database)

	return &testEnv{
		projects:    NewProjectService(projectRepo),
		tasks:       NewTaskService(taskRepo),
		assignments: NewAssignmentService(assignmentRepo),
		events:      NewEventService(eventRepo),
		config:      NewConfigService(configRepo),
		importSvc:   NewImportService(uow),
		schedule: NewScheduleService(projectRepo, taskRepo, assignmentRepo,
			eventRepo, blockRepo, configRepo, uow, nil),
		projectRepo: projectRepo,
		blockRepo:   blockRepo,
	}
}
