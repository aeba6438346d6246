package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// CLIGitRepository talks to the git command-line tool. Git's behavior is
// treated as opaque and authoritative; its stderr passes through to the
// terminal unmodified.
type CLIGitRepository struct {
	binary string
}

// NewCLIGitRepository creates a repository backed by the `git` binary on PATH.
func NewCLIGitRepository() *CLIGitRepository {
	return &CLIGitRepository{binary: "git"}
}

// ListSubmodules runs `git submodule status .` scoped to the working tree
// rooted at dir and parses the tabular output into records.
func (it *CLIGitRepository) ListSubmodules(
	ctx context.Context,
	dir string,
) ([]entities.Submodule, error) {
	cmd := exec.CommandContext(ctx, it.binary, "submodule", "status", ".")
	cmd.Dir = dir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	logger.Debugf("Running: git submodule status . (in %s)", dir)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git submodule status: %w", err)
	}

	return entities.ParseSubmoduleStatus(stdout.String())
}

// AddSubmodule runs `git submodule add <url> <path>` in the working tree
// rooted at dir. A non-zero exit is returned as *entities.GitExitError so
// the caller can propagate git's exit code verbatim.
func (it *CLIGitRepository) AddSubmodule(ctx context.Context, dir, url, path string) error {
	args := []string{"submodule", "add", url, path}

	cmd := exec.CommandContext(ctx, it.binary, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debugf("Running: git submodule add %s %s (in %s)", url, path, dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &entities.GitExitError{Args: args, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("git submodule add %s %s: %w", url, path, err)
	}

	return nil
}
