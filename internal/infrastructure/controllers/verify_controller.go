package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoopforge/bucketsync/internal/domain/commands"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// VerifyController handles the "verify" subcommand.
type VerifyController struct {
	command commands.Verify
}

// NewVerifyController creates a new VerifyController.
func NewVerifyController(command commands.Verify) *VerifyController {
	return &VerifyController{command: command}
}

// GetBind returns the Cobra command metadata for the verify controller.
func (it *VerifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "verify",
		Short: "Check the submodule configuration against the registry",
		Long: `Cross-check the working copy's .gitmodules configuration against
the bucket registry. Reports submodules whose URL differs from the
registered one and submodules unknown to the registry. Buckets that
are registered but not yet linked are informational; run sync to add
them.`,
	}
}

// Execute verifies the submodule configuration.
func (it *VerifyController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(cmd.Context(), settings)
	if err != nil {
		return err
	}

	for _, mismatch := range result.Mismatched {
		logger.Errorf(
			"Bucket %s is linked from %s but registered at %s",
			mismatch.Name, mismatch.ConfiguredURL, mismatch.RegistryURL,
		)
	}
	for _, name := range result.Unknown {
		logger.Errorf("Submodule %s is not in the registry", name)
	}
	for _, name := range result.Missing {
		logger.Infof("Bucket %s is registered but not linked yet", name)
	}

	if !result.Clean() {
		return fmt.Errorf(
			"verification failed: %d mismatched, %d unknown",
			len(result.Mismatched), len(result.Unknown),
		)
	}

	logger.Info("Submodule configuration matches the registry")
	return nil
}
