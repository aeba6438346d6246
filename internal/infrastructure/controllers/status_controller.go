package controllers

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scoopforge/bucketsync/internal/domain/commands"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status",
		Short: "List the currently-linked bucket submodules",
		Long: `List the submodules currently linked in the working copy,
one line per bucket with its pinned revision and description.`,
	}
}

// Execute prints the current submodule records.
func (it *StatusController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	submodules, err := it.command.Execute(cmd.Context(), settings)
	if err != nil {
		return err
	}

	if len(submodules) == 0 {
		fmt.Println("No submodules linked.")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, sub := range submodules {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", sub.Path, sub.Revision, sub.Description)
	}
	return writer.Flush()
}
