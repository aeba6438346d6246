package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRegistryPath is the fixed relative location of the bucket
	// registry when no settings file overrides it.
	DefaultRegistryPath = "buckets.json"

	// DefaultWorkDir is the working tree root used when no settings file
	// overrides it.
	DefaultWorkDir = "."
)

// Settings is the top-level configuration for bucketsync.
type Settings struct {
	Registry string `yaml:"registry"` // Path to the bucket registry file
	WorkDir  string `yaml:"workdir"`  // Root of the working tree holding the submodules
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Registry: DefaultRegistryPath,
		WorkDir:  DefaultWorkDir,
	}
}

// Load reads and parses a settings file, expanding environment variable
// references in path values and filling in defaults for omitted keys.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Registry = ResolvePath(settings.Registry)
	settings.WorkDir = ResolvePath(settings.WorkDir)

	if settings.Registry == "" {
		settings.Registry = DefaultRegistryPath
	}
	if settings.WorkDir == "" {
		settings.WorkDir = DefaultWorkDir
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bucketsync.yaml",
		".bucketsync.yml",
		"bucketsync.yaml",
		"bucketsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolvePath expands environment variable references (${VAR}) in a path
// value. Unset variables resolve to the empty string with a warning.
func ResolvePath(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
