package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path constants used by the CLI and loaders.
const (
	HomeEnv         = "ENCARD_HOME"
	DataDirName     = ".encard"
	ConfigFileName  = "config.yml"
	DefaultJSONFile = "questions.json"
	DefaultDuckFile = "questions.duckdb"
	DefaultLogFile  = "encard.log"
)

// DataDir returns $ENCARD_HOME, or ~/.encard.
func DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return filepath.Abs(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// EnsureDir creates dir if it is missing. Calling it again is harmless.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %q: %w", dir, err)
	}
	return nil
}

// ConfigPath returns the config file path under the data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// ResolvePath joins relative paths onto the data directory.
func ResolvePath(dataDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}
