package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import projects, tasks, assignments, and events from a YAML bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d projects, %d tasks, %d assignments, %d events\n",
				result.ProjectCount, result.TaskCount, result.AssignmentCount, result.EventCount)
			return nil
		},
	}
}
