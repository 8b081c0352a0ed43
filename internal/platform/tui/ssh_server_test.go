package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSessionOptions(t *testing.T) {
	srv := &SSHServer{
		config: DefaultSSHServerConfig(),
		logger: log.New(io.Discard),
	}

	opts := srv.sessionOptions("bob", 120, 40)
	if opts.Player != "bob" {
		t.Errorf("Player = %q, expected the SSH user", opts.Player)
	}
	if opts.Runtime.ScreenW != 120 || opts.Runtime.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}
	if opts.Runtime.Seed == 0 {
		t.Error("each session should get its own seed")
	}
	if opts.Music != nil {
		t.Error("remote sessions must not play music")
	}
	if opts.Keeper != nil {
		t.Error("no store means no keeper")
	}
}

func TestSessionOptionsWithStore(t *testing.T) {
	store := openScoreStore(t)
	srv := &SSHServer{
		config: DefaultSSHServerConfig(),
		store:  store,
		logger: log.New(io.Discard),
	}

	a := srv.sessionOptions("ada", 80, 24)
	b := srv.sessionOptions("ada", 80, 24)
	if a.Keeper == nil || b.Keeper == nil {
		t.Fatal("sessions should get a keeper when storage is open")
	}
	if a.Keeper == b.Keeper {
		t.Error("each connection needs its own keeper")
	}
}

func TestNewSSHServerRejectsInvalidGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Game.Scoring.SpeedDivisor = 0

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Fatal("expected config error")
	}
}
