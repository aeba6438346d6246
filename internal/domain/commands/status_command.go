package commands

import (
	"context"
	"fmt"

	"github.com/scoopforge/bucketsync/config"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, settings *config.Settings) ([]entities.Submodule, error)
}

// StatusCommand reports the currently-linked submodules of the working copy.
type StatusCommand struct {
	gitRepo repositories.GitRepository
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(gitRepo repositories.GitRepository) *StatusCommand {
	return &StatusCommand{gitRepo: gitRepo}
}

// Execute queries the current submodule records.
func (it *StatusCommand) Execute(
	ctx context.Context,
	settings *config.Settings,
) ([]entities.Submodule, error) {
	submodules, err := it.gitRepo.ListSubmodules(ctx, settings.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("failed to query submodule status: %w", err)
	}

	return submodules, nil
}
