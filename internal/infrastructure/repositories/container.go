package repositories

import (
	domainRepos "github.com/scoopforge/bucketsync/internal/domain/repositories"
	gitRepo "github.com/scoopforge/bucketsync/internal/infrastructure/repositories/git"
	modulesRepo "github.com/scoopforge/bucketsync/internal/infrastructure/repositories/gitmodules"
	registryRepo "github.com/scoopforge/bucketsync/internal/infrastructure/repositories/registry"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(gitRepo.NewCLIGitRepository); err != nil {
		return err
	}
	if err := container.Provide(registryRepo.NewJSONRegistryRepository); err != nil {
		return err
	}
	if err := container.Provide(modulesRepo.NewGoGitModulesRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *gitRepo.CLIGitRepository) domainRepos.GitRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *registryRepo.JSONRegistryRepository) domainRepos.RegistryRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *modulesRepo.GoGitModulesRepository) domainRepos.ModulesRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
