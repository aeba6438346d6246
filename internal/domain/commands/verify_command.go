package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/scoopforge/bucketsync/config"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/internal/domain/repositories"
)

// Verify is the interface for the verify command.
type Verify interface {
	Execute(ctx context.Context, settings *config.Settings) (*entities.VerifyResult, error)
}

// VerifyCommand cross-checks the working copy's .gitmodules configuration
// against the bucket registry. It reads the configuration directly instead
// of shelling out, so it works even when submodules are not initialized.
type VerifyCommand struct {
	modulesRepo  repositories.ModulesRepository
	registryRepo repositories.RegistryRepository
}

// NewVerifyCommand creates a new VerifyCommand with the given repositories.
func NewVerifyCommand(
	modulesRepo repositories.ModulesRepository,
	registryRepo repositories.RegistryRepository,
) *VerifyCommand {
	return &VerifyCommand{
		modulesRepo:  modulesRepo,
		registryRepo: registryRepo,
	}
}

// Execute compares configured submodules with the registry.
func (it *VerifyCommand) Execute(
	_ context.Context,
	settings *config.Settings,
) (*entities.VerifyResult, error) {
	registry, err := it.registryRepo.Load(settings.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket registry: %w", err)
	}

	modules, err := it.modulesRepo.ListModules(settings.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read submodule configuration: %w", err)
	}

	registered := make(map[string]string, registry.Len())
	for _, bucket := range registry.Buckets {
		registered[bucket.Name] = bucket.URL
	}

	linked := make(map[string]struct{}, len(modules))
	result := &entities.VerifyResult{}

	for _, module := range modules {
		linked[module.Path] = struct{}{}

		url, exists := registered[module.Path]
		if !exists {
			result.Unknown = append(result.Unknown, module.Path)
			continue
		}
		if url != module.URL {
			result.Mismatched = append(result.Mismatched, entities.Mismatch{
				Name:          module.Path,
				RegistryURL:   url,
				ConfiguredURL: module.URL,
			})
		}
	}

	// Registered but not yet linked buckets are sync's job, not a fault.
	for _, bucket := range registry.Buckets {
		if _, exists := linked[bucket.Name]; !exists {
			result.Missing = append(result.Missing, bucket.Name)
		}
	}

	logger.Debugf(
		"Verified %d modules against %d buckets: %d mismatched, %d unknown, %d missing",
		len(modules), registry.Len(),
		len(result.Mismatched), len(result.Unknown), len(result.Missing),
	)

	return result, nil
}
