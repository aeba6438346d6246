package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoopforge/bucketsync/internal/domain/commands"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// SyncController handles the "sync" subcommand (reconciliation).
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Add every registered bucket missing from the working copy",
		Long: `Reconcile the working copy's submodules against the bucket registry.

Each registered bucket that is not yet linked as a submodule is added
with "git submodule add", in the order the registry file declares them.
Buckets already present are skipped. The first failing addition aborts
the run and its git exit code becomes the process exit code; buckets
added before the failure stay added.`,
	}
}

// Execute runs one reconciliation pass.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger.Infof("Reconciling buckets from %s", settings.Registry)

	_, err = it.command.Execute(cmd.Context(), settings, commands.SyncOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	})
	return err
}
