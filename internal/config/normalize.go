package config

import (
	"strings"
	"time"

	"encard/internal/logging"
)

// DefaultTickInterval is how often the elapsed clock refreshes.
const DefaultTickInterval = time.Second

// Normalize fills defaults and resolves paths against dataDir.
func Normalize(cfg *Config, dataDir string) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "json"
	}
	cfg.Store.Path = strings.TrimSpace(cfg.Store.Path)
	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStoreFile(cfg.Store.Backend)
	}
	cfg.Store.Path = ResolvePath(dataDir, cfg.Store.Path)
	if cfg.UI.TickInterval == 0 {
		cfg.UI.TickInterval = DefaultTickInterval
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = logging.DefaultLevel
	}
	cfg.Log.File = ResolvePath(dataDir, strings.TrimSpace(cfg.Log.File))
}

// DefaultStoreFile returns the default file name for a backend.
func DefaultStoreFile(backend string) string {
	if backend == "duckdb" {
		return DefaultDuckFile
	}
	return DefaultJSONFile
}
