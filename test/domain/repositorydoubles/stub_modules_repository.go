//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/internal/domain/repositories"
)

// StubModulesRepository is a stub implementation of
// repositories.ModulesRepository returning scripted .gitmodules entries.
type StubModulesRepository struct {
	Modules []entities.Module
	ListErr error
	// spy: dirs that were requested
	ListedDirs []string
}

var _ repositories.ModulesRepository = (*StubModulesRepository)(nil)

func (s *StubModulesRepository) ListModules(dir string) ([]entities.Module, error) {
	s.ListedDirs = append(s.ListedDirs, dir)
	return s.Modules, s.ListErr
}
