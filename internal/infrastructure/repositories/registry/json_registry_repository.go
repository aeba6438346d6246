package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// JSONRegistryRepository loads the bucket registry from a JSON file mapping
// bucket name to clone URL.
type JSONRegistryRepository struct{}

// NewJSONRegistryRepository creates a new JSONRegistryRepository.
func NewJSONRegistryRepository() *JSONRegistryRepository {
	return &JSONRegistryRepository{}
}

// Load reads the registry file at path. The file is read in full up front,
// so no handle stays open while additions run.
func (it *JSONRegistryRepository) Load(path string) (*entities.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %q: %w", path, err)
	}

	var reg entities.Registry
	if unmarshalErr := json.Unmarshal(data, &reg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse registry file %q: %w", path, unmarshalErr)
	}

	return &reg, nil
}
