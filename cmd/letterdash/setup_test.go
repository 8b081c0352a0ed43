package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr, expected string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}

	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

func TestNewLoggerWritesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "letterdash.log")

	logger, closer, err := newLogger(nil, path, "letterdash")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "letterdash") {
		t.Errorf("log file missing entry:\n%s", data)
	}
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	old := flagDifficulty
	t.Cleanup(func() { flagDifficulty = old })

	flagDifficulty = "nightmare"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown preset")
	}
}
