package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadSettings reads settings and applies command line overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
		if err := settings.Validate(); err != nil {
			return config.Settings{}, fmt.Errorf("--log-level: %w", err)
		}
	}
	return settings, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, settings config.Settings, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           settings.LogLevel(),
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile opens the play log. The terminal belongs to the game, so
// without a log file everything is discarded.
func openLogFile(settings config.Settings) (io.WriteCloser, error) {
	if settings.Log.File == "" {
		return nopCloser{io.Discard}, nil
	}

	path := config.ExpandHome(settings.Log.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
