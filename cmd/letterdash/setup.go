package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-dash/internal/config"
)

// loadConfig resolves the game configuration from the global flags.
func loadConfig() (config.LetterDashConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.LetterDashConfig{}, err
	}
	return config.Resolve(flagConfig, preset)
}

// newLogger returns a logger writing to --log-file, else to defaultPath, else
// to w. A nil w discards output. The returned closer is never nil.
func newLogger(w io.Writer, defaultPath, prefix string) (*log.Logger, io.Closer, error) {
	var closer io.Closer = io.NopCloser(nil)
	path := flagLogFile
	if path == "" {
		path = defaultPath
	}
	if path != "" {
		//nolint:errcheck // OpenFile reports a missing directory
		os.MkdirAll(filepath.Dir(path), 0o755)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
