//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopforge/bucketsync/config"
	"github.com/scoopforge/bucketsync/internal/domain/commands"
	"github.com/scoopforge/bucketsync/internal/domain/entities"
	"github.com/scoopforge/bucketsync/test/domain/entitybuilders"
	"github.com/scoopforge/bucketsync/test/domain/repositorydoubles"
)

// --- helpers ---

func buildTestSettings() *config.Settings {
	return &config.Settings{
		Registry: "buckets.json",
		WorkDir:  ".",
	}
}

func buildRegistry(buckets ...entities.Bucket) *entities.Registry {
	return &entities.Registry{Buckets: buckets}
}

// --- tests ---

func TestSyncCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should add every missing bucket in registry order", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{
			Submodules: []entities.Submodule{
				{Revision: "abc123", Path: "extras", Description: "(heads/master)"},
			},
		}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(
				entitybuilders.NewBucketBuilder().
					WithName("main").WithURL("https://example.com/main.git").BuildBucket(),
				entitybuilders.NewBucketBuilder().
					WithName("extras").WithURL("https://example.com/extras.git").BuildBucket(),
				entitybuilders.NewBucketBuilder().
					WithName("versions").WithURL("https://example.com/versions.git").BuildBucket(),
			),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"main", "versions"}, gitRepo.AddedPaths())
		assert.Equal(t, []string{"main", "versions"}, result.Added)
		assert.Equal(t, []string{"extras"}, result.Skipped)
		require.Len(t, gitRepo.AddCalls, 2)
		assert.Equal(t, "https://example.com/main.git", gitRepo.AddCalls[0].URL)
	})

	t.Run("should skip every bucket already present", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{
			Submodules: []entities.Submodule{
				{Revision: "abc123", Path: "foo", Description: "(v1.0)"},
			},
		}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(entities.Bucket{Name: "foo", URL: "url1"}),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, gitRepo.AddCalls, "no additions expected when every bucket exists")
		assert.Empty(t, result.Added)
		assert.Equal(t, []string{"foo"}, result.Skipped)
	})

	t.Run("should be idempotent across two runs of a populated tree", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{
			Submodules: []entities.Submodule{
				{Revision: "abc123", Path: "main", Description: ""},
				{Revision: "def456", Path: "extras", Description: ""},
			},
		}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(
				entities.Bucket{Name: "main", URL: "url1"},
				entities.Bucket{Name: "extras", URL: "url2"},
			),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		_, firstErr := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})
		secondResult, secondErr := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Empty(t, gitRepo.AddCalls)
		assert.Equal(t, []string{"main", "extras"}, secondResult.Skipped)
	})

	t.Run("should abort on the first failing addition", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{
			AddErrs: map[string]error{
				"bucket-b": &entities.GitExitError{
					Args: []string{"submodule", "add", "url-b", "bucket-b"},
					Code: 128,
				},
			},
		}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(
				entities.Bucket{Name: "bucket-a", URL: "url-a"},
				entities.Bucket{Name: "bucket-b", URL: "url-b"},
				entities.Bucket{Name: "bucket-c", URL: "url-c"},
			),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.Error(t, err)
		assert.Equal(t, []string{"bucket-a", "bucket-b"}, gitRepo.AddedPaths(),
			"bucket-c must never be attempted after bucket-b fails")
		assert.Equal(t, []string{"bucket-a", "bucket-b"}, result.Added)
		assert.Equal(t, 128, entities.ExitCodeFromError(err))
	})

	t.Run("should perform no additions for an empty registry", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, gitRepo.AddCalls)
		assert.Empty(t, result.Added)
		assert.Empty(t, result.Skipped)
		assert.Equal(t, 0, entities.ExitCodeFromError(err))
	})

	t.Run("should not invoke git when dry-run is set", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(entities.Bucket{Name: "main", URL: "url1"}),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{DryRun: true})

		// then
		require.NoError(t, err)
		assert.Empty(t, gitRepo.AddCalls, "dry-run must not create submodules")
		assert.Equal(t, []string{"main"}, result.Added)
	})

	t.Run("should fail before any addition when the status query fails", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{
			ListErr: errors.New("fatal: not a git repository"),
		}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			Registry: buildRegistry(entities.Bucket{Name: "main", URL: "url1"}),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, gitRepo.AddCalls)
		assert.Empty(t, registryRepo.LoadedPaths,
			"the registry must not be read when the current state is unknown")
	})

	t.Run("should fail before any addition when the registry cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{}
		registryRepo := &repositorydoubles.StubRegistryRepository{
			LoadErr: errors.New("open buckets.json: no such file or directory"),
		}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		// when
		result, err := command.Execute(ctx, buildTestSettings(), commands.SyncOptions{})

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, gitRepo.AddCalls)
		assert.Equal(t, 1, entities.ExitCodeFromError(err))
	})

	t.Run("should load the registry from the configured path", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		gitRepo := &repositorydoubles.StubGitRepository{}
		registryRepo := &repositorydoubles.StubRegistryRepository{}
		command := commands.NewSyncCommand(gitRepo, registryRepo)

		settings := &config.Settings{Registry: "fixtures/buckets.json", WorkDir: "fixtures"}

		// when
		_, err := command.Execute(ctx, settings, commands.SyncOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"fixtures/buckets.json"}, registryRepo.LoadedPaths)
	})
}
