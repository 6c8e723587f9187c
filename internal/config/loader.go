package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
	Home         string // Defaults to the user's home directory
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
		Home:         home,
	}
}

// Load attempts to load the configuration.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// local run directory in dev builds
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".pixelpaintrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	if l.Home == "" {
		return ""
	}
	for _, name := range []string{"config.rc", "pixelpaint.rc"} {
		p := filepath.Join(l.Home, ".config", "pixelpaint", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath is where a new config file is written when none exists yet.
func (l *Loader) DefaultPath() string {
	return filepath.Join(l.Home, ".config", "pixelpaint", "config.rc")
}
