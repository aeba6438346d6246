//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/internal/domain/repositories"
)

// StubRegistryRepository is a stub implementation of
// repositories.RegistryRepository returning a scripted registry.
type StubRegistryRepository struct {
	Registry *entities.Registry
	LoadErr  error
	// spy: paths that were requested
	LoadedPaths []string
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) Load(path string) (*entities.Registry, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Registry != nil {
		return s.Registry, nil
	}
	return &entities.Registry{}, nil
}
