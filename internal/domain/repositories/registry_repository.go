package repositories

import (
	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// RegistryRepository loads the desired-state bucket registry.
type RegistryRepository interface {
	// Load reads the registry file at path. The file is fully read and
	// closed before Load returns, so no handle is held across the
	// reconciliation loop.
	Load(path string) (*entities.Registry, error)
}
