package gitmodules

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// GoGitModulesRepository reads the .gitmodules configuration through go-git,
// without invoking the git binary.
type GoGitModulesRepository struct{}

// NewGoGitModulesRepository creates a new GoGitModulesRepository.
func NewGoGitModulesRepository() *GoGitModulesRepository {
	return &GoGitModulesRepository{}
}

// ListModules returns the submodule entries configured for the working copy
// rooted at dir.
func (it *GoGitModulesRepository) ListModules(dir string) ([]entities.Module, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree at %q: %w", dir, err)
	}

	submodules, err := worktree.Submodules()
	if err != nil {
		return nil, fmt.Errorf("failed to read submodule configuration: %w", err)
	}

	modules := make([]entities.Module, 0, len(submodules))
	for _, sub := range submodules {
		cfg := sub.Config()
		modules = append(modules, entities.Module{
			Name: cfg.Name,
			Path: cfg.Path,
			URL:  cfg.URL,
		})
	}

	return modules, nil
}
