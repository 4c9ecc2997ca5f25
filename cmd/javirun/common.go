package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/storage"
)

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger. The terminal belongs to the game,
// so logs go to a file unless path is "-".
func newLogger(level, path string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if path != "" && path != "-" {
		path, err = expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "javirun",
		Level:           lvl,
	})
	return logger, closer, nil
}

// loadConfig loads the runner config and repairs or rejects invalid values.
func loadConfig(path string, strict bool, logger *log.Logger) (config.RunnerConfig, error) {
	cfg, source, err := config.LoadRunner(path)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if strict {
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", source, err)
		}
		return cfg, nil
	}
	for _, fix := range cfg.Normalize() {
		logger.Warn("config repaired", "source", source, "fix", fix)
	}
	return cfg, nil
}

// openStore opens the backend named by --store, or fallback when unset.
func openStore(kind storage.Kind, fallback storage.Kind) (storage.Backend, error) {
	if kind == "" {
		kind = fallback
	}
	return storage.OpenBackend(storage.Options{
		Kind:    kind,
		DBPath:  flagDBPath,
		AppName: "javirun",
	})
}

// runStore returns the run history of b, if it keeps one.
func runStore(b storage.Backend) storage.RunStore {
	rs, _ := b.(storage.RunStore)
	return rs
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// setup is the shared preamble of the game commands.
type setup struct {
	logger *log.Logger
	closer io.Closer
	cfg    config.RunnerConfig
}

func newSetup() setup {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig(flagConfig, flagStrictConfig, logger)
	if err != nil {
		closer.Close()
		fail("%v", err)
	}
	return setup{logger: logger, closer: closer, cfg: cfg}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
