package cli

import (
	"github.com/spf13/cobra"

	"blockplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Tasks       service.TaskService
	Assignments service.AssignmentService
	Events      service.EventService
	Config      service.ConfigService
	Import      service.ImportService
	Schedule    service.ScheduleService
}

// NewRootCmd creates the top-level "blockplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "blockplan",
		Short: "Time-block scheduler for projects, assignments, and household tasks",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newAssignmentCmd(app),
		newEventCmd(app),
		newConfigCmd(app),
		newScheduleCmd(app),
		newImportCmd(app),
	)

	return root
}
