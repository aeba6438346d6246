package repositories

import (
	"context"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// GitRepository abstracts the git submodule plumbing. Production wires it to
// real subprocess invocations; tests substitute scripted doubles.
type GitRepository interface {
	// ListSubmodules queries the current submodule state of the working
	// tree rooted at dir. It fails on a non-zero git exit or on output
	// that cannot be parsed into records.
	ListSubmodules(ctx context.Context, dir string) ([]entities.Submodule, error)

	// AddSubmodule links a new submodule at path inside the working tree
	// rooted at dir, cloning from url. A non-zero git exit is returned as
	// *entities.GitExitError carrying the subprocess exit code.
	AddSubmodule(ctx context.Context, dir, url, path string) error
}
