package config

import (
	"errors"
	"fmt"
	"os"
)

const scaffoldTemplate = `version: 1
store:
  backend: %s
  # path defaults to %s in this directory
ui:
  no_color: false
  tick_interval: 1s
log:
  level: %s
  # file: %s
`

// renderScaffold returns the starter config.yml for backend.
func renderScaffold(backend string) string {
	return fmt.Sprintf(scaffoldTemplate, backend, DefaultStoreFile(backend), "warn", DefaultLogFile)
}

// Scaffold writes a starter config.yml into dataDir and returns its path.
// An existing config is never overwritten. The rendered file is parsed and
// validated before it is written.
func Scaffold(dataDir, backend string) (string, error) {
	if dataDir == "" {
		return "", errors.New("data directory is required")
	}
	path := ConfigPath(dataDir)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", path)
		}
		return "", fmt.Errorf("config already exists at %q", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}

	content := renderScaffold(backend)
	cfg, err := Parse([]byte(content))
	if err != nil {
		return "", err
	}
	Normalize(&cfg, dataDir)
	if err := Validate(&cfg); err != nil {
		return "", err
	}

	if err := EnsureDir(dataDir); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
