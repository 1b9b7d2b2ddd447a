package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"blockplan/internal/cli"
	"blockplan/internal/db"
	"blockplan/internal/llm"
	"blockplan/internal/repository"
	"blockplan/internal/scheduler"
	"blockplan/internal/service"
	"blockplan/internal/timing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; env vars win over file values.
	_ = godotenv.Load()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	dbPath := os.Getenv("BLOCKPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".blockplan", "blockplan.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteHouseholdTaskRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	blockRepo := repository.NewSQLiteTimeBlockRepo(database)
	configRepo := repository.NewSQLiteUserConfigRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// The timing analyzer is optional; without it the engine falls back to
	// default timing windows.
	var oracle scheduler.TimingOracle
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		oracle = timing.NewAnalyzer(llm.NewOllamaClient(llmCfg, observer))
	}

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo),
		Tasks:       service.NewTaskService(taskRepo),
		Assignments: service.NewAssignmentService(assignmentRepo),
		Events:      service.NewEventService(eventRepo),
		Config:      service.NewConfigService(configRepo),
		Import:      service.NewImportService(uow),
		Schedule: service.NewScheduleService(projectRepo, taskRepo, assignmentRepo,
			eventRepo, blockRepo, configRepo, uow, oracle),
	}

	return cli.NewRootCmd(app).Execute()
}
