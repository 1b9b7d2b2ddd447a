package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_ImportFile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	path := writeImportFile(t, `
projects:
  - name: Thesis
    total_hours: 120
    allocation_percentage: 40
  - name: Open source
    total_hours: 30
    allocation_percentage: 10
household_tasks:
  - name: Laundry
    duration_minutes: 45
    recurrence: weekly
assignments:
  - course: Algorithms
    name: Problem set 3
    due_date: "2026-03-13"
external_events:
  - title: Dentist
    start: "2026-03-04T10:00:00Z"
    end: "2026-03-04T11:00:00Z"
`)

	result, err := env.importSvc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ProjectCount)
	assert.Equal(t, 1, result.TaskCount)
	assert.Equal(t, 1, result.AssignmentCount)
	assert.Equal(t, 1, result.EventCount)

	projects, err := env.projects.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestImportService_ValidationFailureWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	path := writeImportFile(t, `
projects:
  - name: Thesis
    total_hours: 120
    allocation_percentage: 40
  - name: ""
    total_hours: -1
    allocation_percentage: 999
`)

	_, err := env.importSvc.ImportFile(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")

	projects, listErr := env.projects.List(ctx, false)
	require.NoError(t, listErr)
	assert.Empty(t, projects)
}

func TestImportService_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.importSvc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
