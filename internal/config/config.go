// Package config reads the optional per-repository scribe configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up at the repository root
const FileName = ".scribe.yaml"

// Identity is a configured author or committer identity
type Identity struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Config is the repository configuration. All fields are optional.
type Config struct {
	DefaultBranch string   `yaml:"default_branch"`
	Author        Identity `yaml:"author"`
}

// Load reads the configuration from the repository root. A missing file
// yields the zero configuration.
func Load(repoRoot string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Branch returns the configured default branch, or "main"
func (c *Config) Branch() string {
	if c.DefaultBranch != "" {
		return c.DefaultBranch
	}
	return "main"
}
