package repositories

import (
	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// ModulesRepository reads the .gitmodules configuration of a working copy.
type ModulesRepository interface {
	ListModules(dir string) ([]entities.Module, error)
}
