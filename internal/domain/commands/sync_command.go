package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/scoopforge/bucketsync/config"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/internal/domain/repositories"
)

// Sync is the interface for the sync command (reconciliation).
type Sync interface {
	Execute(ctx context.Context, settings *config.Settings, opts SyncOptions) (*entities.SyncResult, error)
}

// SyncOptions holds runtime options for a single sync run.
type SyncOptions struct {
	DryRun  bool
	Verbose bool
}

// SyncCommand reconciles the working copy's submodules against the bucket
// registry: every registered bucket missing from the current submodule set
// is added, in registry file order, and the first failing addition aborts
// the run. Entries added before the failure stay added; there is no
// rollback.
type SyncCommand struct {
	gitRepo      repositories.GitRepository
	registryRepo repositories.RegistryRepository
}

// NewSyncCommand creates a new SyncCommand with the given repositories.
func NewSyncCommand(
	gitRepo repositories.GitRepository,
	registryRepo repositories.RegistryRepository,
) *SyncCommand {
	return &SyncCommand{
		gitRepo:      gitRepo,
		registryRepo: registryRepo,
	}
}

// Execute runs one reconciliation pass.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *config.Settings,
	opts SyncOptions,
) (*entities.SyncResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	// Snapshot the current state once; git's on-disk metadata stays the
	// source of truth, so this set is not updated as buckets are added.
	submodules, err := it.gitRepo.ListSubmodules(ctx, settings.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("failed to query submodule status: %w", err)
	}

	known := make(map[string]struct{}, len(submodules))
	for _, sub := range submodules {
		known[sub.Path] = struct{}{}
	}

	registry, err := it.registryRepo.Load(settings.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket registry: %w", err)
	}

	logger.Debugf("Found %d submodules, %d registered buckets", len(submodules), registry.Len())

	result := &entities.SyncResult{}

	for _, bucket := range registry.Buckets {
		if _, exists := known[bucket.Name]; exists {
			logger.Infof("[-] Skipping bucket %s as it exists", bucket.Name)
			result.Skipped = append(result.Skipped, bucket.Name)
			continue
		}

		logger.Infof("[+] Adding bucket %s at %s", bucket.Name, bucket.URL)
		result.Added = append(result.Added, bucket.Name)

		if opts.DryRun {
			continue
		}

		if addErr := it.gitRepo.AddSubmodule(ctx, settings.WorkDir, bucket.URL, bucket.Name); addErr != nil {
			// Abort on the first failure; buckets after this one in
			// registry order are left for the next run.
			return result, addErr
		}
	}

	logger.Infof("Sync complete: %d added, %d skipped", len(result.Added), len(result.Skipped))
	return result, nil
}
