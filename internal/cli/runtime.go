package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"encard/internal/config"
	"encard/internal/logging"
	"encard/internal/question"
	"encard/internal/store"
)

// runtime bundles what every command needs: resolved config, a logger and a
// way to open the store.
type runtime struct {
	dataDir  string
	cfg      config.Config
	log      *logrus.Logger
	closeLog func() error
}

// logTarget selects where runtime logs go.
type logTarget int

const (
	// logToStderr is used by non-interactive commands.
	logToStderr logTarget = iota
	// logToFile is used while the quiz UI owns the terminal.
	logToFile
)

// loadRuntime resolves the data directory and config, applying flag overrides.
func loadRuntime(opts globalOptions, target logTarget, stderr io.Writer) (*runtime, error) {
	dataDir, err := resolveDataDir(opts)
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	applyOverrides(&cfg, opts, dataDir)
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}

	rt := &runtime{dataDir: dataDir, cfg: cfg, closeLog: func() error { return nil }}
	switch target {
	case logToFile:
		if cfg.Log.File == "" {
			rt.log = logging.Discard()
			break
		}
		logger, closeFn, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		rt.log, rt.closeLog = logger, closeFn
	default:
		logger, err := logging.New(stderr, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		rt.log = logger
	}
	return rt, nil
}

// resolveDataDir returns the absolute data directory from --data-dir,
// $ENCARD_HOME or the home directory.
func resolveDataDir(opts globalOptions) (string, error) {
	dataDir := strings.TrimSpace(opts.dataDir)
	if dataDir == "" {
		resolved, err := config.DataDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
		}
		return resolved, nil
	}
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return abs, nil
}

// applyOverrides layers command line flags over the loaded config.
func applyOverrides(cfg *config.Config, opts globalOptions, dataDir string) {
	if backend := strings.ToLower(strings.TrimSpace(opts.backend)); backend != "" && backend != cfg.Store.Backend {
		cfg.Store.Backend = backend
		cfg.Store.Path = config.ResolvePath(dataDir, config.DefaultStoreFile(backend))
	}
	if path := strings.TrimSpace(opts.store); path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		cfg.Store.Path = path
	}
}

// openStore opens the configured question store.
func (rt *runtime) openStore(ctx context.Context) (store.Store, error) {
	rt.log.WithFields(logrus.Fields{
		"backend": rt.cfg.Store.Backend,
		"path":    rt.cfg.Store.Path,
	}).Debug("opening question store")
	return store.Open(ctx, store.Options{
		Backend: rt.cfg.Store.Backend,
		Path:    rt.cfg.Store.Path,
		Logger:  rt.log,
	})
}

func (rt *runtime) close() {
	if rt == nil || rt.closeLog == nil {
		return
	}
	_ = rt.closeLog()
}

// reportError prints a user-facing message for err and returns the exit code.
func reportError(stderr io.Writer, err error) int {
	var validationErr *question.ValidationError
	var configErr *config.ValidationError
	// Malformed storage wraps the validation error of the offending record.
	switch {
	case errors.Is(err, store.ErrMalformedStorage):
		fmt.Fprintf(stderr, "Question store is malformed and was left untouched:\n%v\n", err)
	case errors.As(err, &validationErr):
		fmt.Fprintln(stderr, "Invalid question:")
		for _, issue := range validationErr.Issues {
			fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
		}
	case errors.As(err, &configErr):
		fmt.Fprintf(stderr, "Invalid config:\n%s\n", configErr.Error())
	case errors.Is(err, store.ErrStorageUnavailable):
		fmt.Fprintf(stderr, "Question store is unavailable:\n%v\n", err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitError
}
