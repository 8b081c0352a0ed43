// Package letterdash implements Letter Dash, a reflex game where the player
// must pick the shown letter before the round timer runs out.
// A Buddy Runner advances along a track with each correct answer; clearing
// a level shortens the time budget until the final level is reached.
package letterdash

import (
	"github.com/vovakirdan/letter-dash/internal/config"
	"github.com/vovakirdan/letter-dash/internal/core"
)

// GameID identifies Letter Dash results in storage.
const GameID = "letterdash"

// MusicController is a Music loop the player can switch on and off.
type MusicController interface {
	Music
	SetEnabled(on bool)
	Enabled() bool
}

// Game adapts a Session to the frame loop: input frames in, screen out.
type Game struct {
	cfg       config.LetterDashConfig
	opts      []Option
	music     MusicController
	session   *Session
	runtime   core.RuntimeConfig
	player    string
	padRects  []padButton
	tickCount int
}

type padButton struct {
	rect   core.Rect
	letter rune
}

// New creates a game for the given configuration. music may be nil.
func New(cfg config.LetterDashConfig, music MusicController, opts ...Option) (*Game, error) {
	g := &Game{cfg: cfg, music: music, opts: opts}
	if music != nil {
		g.opts = append([]Option{WithMusic(music)}, opts...)
	}
	s, err := NewSession(cfg, g.opts...)
	if err != nil {
		return nil, err
	}
	g.session = s
	g.runtime = core.DefaultConfig()
	return g, nil
}

// ID returns the game identifier used for persistence.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Letter Dash"
}

// Reset returns to the idle screen with a fresh session.
// A non-zero Seed makes targets and pads deterministic.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tickCount = 0
	g.padRects = nil

	if g.session != nil && g.session.Running() && g.music != nil {
		g.music.Stop()
	}

	opts := g.opts
	if cfg.Seed != 0 {
		opts = append(append([]Option(nil), g.opts...), WithSeed(cfg.Seed))
	}
	// The config was validated by New, so this cannot fail.
	s, err := NewSession(g.cfg, opts...)
	if err != nil {
		return
	}
	s.SetPlayer(g.player)
	g.session = s
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tickCount++

	switch {
	case in.Has(core.ActionRestart):
		g.session.Restart()
	case in.Has(core.ActionConfirm) && !g.session.Running():
		g.session.Start()
	}

	if in.Has(core.ActionToggleMusic) {
		g.ToggleMusic()
	}

	g.session.Tick()

	return StepResult{
		State:  g.State(),
		Events: g.session.DrainEvents(),
	}
}

// ToggleMusic flips the music preference. Turning it on does not start the
// loop mid-session; it plays from the next start.
func (g *Game) ToggleMusic() {
	if g.music == nil {
		g.session.Notify("Music is not available.")
		return
	}
	on := !g.music.Enabled()
	g.music.SetEnabled(on)
	if on {
		g.session.Notify("Music enabled.")
	} else {
		g.session.Notify("Music disabled.")
	}
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.score,
		Running:  g.session.Running(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Finished: g.session.Phase() == PhaseFinished,
	}
}

// SetPlayer sets the player name for this and later sessions.
func (g *Game) SetPlayer(name string) {
	g.player = name
	g.session.SetPlayer(name)
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session view plus the music preference.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.MusicOn = g.music != nil && g.music.Enabled()
	return snap
}

// Submit answers the active round right away. Input adapters call it as
// soon as a letter is pressed so the reaction time is read at the press.
func (g *Game) Submit(letter rune) {
	g.session.Submit(letter)
}

// LetterAt returns the pad letter drawn at the given cell, if any.
// Valid after the last Render.
func (g *Game) LetterAt(x, y int) (rune, bool) {
	for _, b := range g.padRects {
		if b.rect.Contains(x, y) {
			return b.letter, true
		}
	}
	return 0, false
}
