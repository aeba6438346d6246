package entities

import (
	"fmt"
	"strings"
)

// Submodule is one currently-linked submodule as reported by
// `git submodule status`. Path is the unique key used for membership tests.
type Submodule struct {
	Revision    string
	Path        string
	Description string
}

// ParseSubmoduleStatus parses the tabular output of `git submodule status`.
// Each line has the form `<revision> <path> <description...>`: the first two
// whitespace-separated tokens are the revision and the path, the remainder
// (which may itself contain whitespace) is the description verbatim. The
// description is optional; a non-blank line with fewer than two fields fails
// the whole read.
func ParseSubmoduleStatus(output string) ([]Submodule, error) {
	var submodules []Submodule

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		sub, err := parseStatusLine(trimmed)
		if err != nil {
			return nil, err
		}
		submodules = append(submodules, sub)
	}

	return submodules, nil
}

// parseStatusLine splits a single status line into at most three fields.
// The revision keeps any state prefix git attaches to it ("-", "+", "U").
func parseStatusLine(line string) (Submodule, error) {
	revision, rest, found := strings.Cut(line, " ")
	if !found || strings.TrimSpace(rest) == "" {
		return Submodule{}, fmt.Errorf("malformed submodule status line %q: expected at least a revision and a path", line)
	}

	path, description, _ := strings.Cut(strings.TrimLeft(rest, " \t"), " ")

	return Submodule{
		Revision:    revision,
		Path:        path,
		Description: strings.TrimLeft(description, " \t"),
	}, nil
}
