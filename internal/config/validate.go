package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	switch cfg.Store.Backend {
	case "json", "duckdb":
	default:
		add("store.backend", fmt.Sprintf("unsupported backend %q (expected json|duckdb)", cfg.Store.Backend))
	}
	if cfg.UI.TickInterval < 0 {
		add("ui.tick_interval", "must not be negative (0 uses the default)")
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
