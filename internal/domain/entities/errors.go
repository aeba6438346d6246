package entities

import (
	"errors"
	"fmt"
	"strings"
)

// GitExitError is returned when a git invocation exits non-zero. The exit
// code is preserved so the process can propagate it verbatim.
type GitExitError struct {
	Args []string
	Code int
}

func (e *GitExitError) Error() string {
	return fmt.Sprintf("git %s exited with code %d", strings.Join(e.Args, " "), e.Code)
}

// ExitCodeFromError maps an error to the process exit code: nil is success,
// a git exit error keeps its original code, anything else is a generic
// failure.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *GitExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
