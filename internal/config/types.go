package config

import "time"

// Config is the optional config.yml in the data directory.
type Config struct {
	Version int         `yaml:"version"`
	Store   StoreConfig `yaml:"store"`
	UI      UIConfig    `yaml:"ui"`
	Log     LogConfig   `yaml:"log"`
}

// StoreConfig selects the question store backend.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// UIConfig tunes the interactive quiz.
type UIConfig struct {
	NoColor      bool          `yaml:"no_color"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
