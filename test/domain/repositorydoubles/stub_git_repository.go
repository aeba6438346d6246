//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/internal/domain/repositories"
)

// AddCall records a single AddSubmodule invocation.
type AddCall struct {
	Dir  string
	URL  string
	Path string
}

// StubGitRepository is a configurable spy implementation of
// repositories.GitRepository. Configure the response fields for the methods
// your test exercises, then inspect the call-tracking fields.
type StubGitRepository struct {
	// --- ListSubmodules ---
	Submodules    []entities.Submodule
	ListErr       error
	ListCallCount int

	// --- AddSubmodule ---
	// AddErrs maps a submodule path to the error its addition returns.
	AddErrs map[string]error
	// spy: additions received, in order
	AddCalls []AddCall
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

func (s *StubGitRepository) ListSubmodules(
	_ context.Context,
	_ string,
) ([]entities.Submodule, error) {
	s.ListCallCount++
	return s.Submodules, s.ListErr
}

func (s *StubGitRepository) AddSubmodule(_ context.Context, dir, url, path string) error {
	s.AddCalls = append(s.AddCalls, AddCall{Dir: dir, URL: url, Path: path})
	if s.AddErrs != nil {
		return s.AddErrs[path]
	}
	return nil
}

// AddedPaths returns the submodule paths of every recorded addition, in order.
func (s *StubGitRepository) AddedPaths() []string {
	paths := make([]string, 0, len(s.AddCalls))
	for _, call := range s.AddCalls {
		paths = append(paths, call.Path)
	}
	return paths
}
