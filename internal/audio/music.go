package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-dash/internal/config"
)

// State is the playback state of a MusicLoop.
type State int

const (
	StateStopped State = iota
	StateStarting
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Option configures a MusicLoop.
type Option func(*MusicLoop)

// WithEngineFactory replaces the beep engine.
func WithEngineFactory(f EngineFactory) Option {
	return func(m *MusicLoop) { m.factory = f }
}

// WithLogger sets the logger used for engine failures.
func WithLogger(l *log.Logger) Option {
	return func(m *MusicLoop) { m.logger = l }
}

// MusicLoop plays the melody at a fixed tempo, one note per tick, wrapping
// around at the end. It is independent of rounds: the game starts it when a
// session starts and stops it when the session ends.
//
// All methods are safe for concurrent use.
type MusicLoop struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	tempo   time.Duration
	factory EngineFactory
	engine  Engine
	logger  *log.Logger

	enabled bool
	state   State
	step    int
	gen     int // Bumped by Start and Stop so a stale start can tell it lost
	stop    chan struct{}
	done    chan struct{}
}

// NewMusicLoop creates a stopped loop. The engine is not opened until the
// first Start.
func NewMusicLoop(cfg config.AudioConfig, opts ...Option) *MusicLoop {
	m := &MusicLoop{
		cfg:     cfg,
		tempo:   time.Duration(cfg.TempoMs) * time.Millisecond,
		factory: NewBeepEngine,
		enabled: cfg.Enabled,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tempo <= 0 {
		m.tempo = 160 * time.Millisecond
	}
	return m
}

// Start begins playback from the first note. It is a no-op when disabled or
// already started. Opening or resuming the engine may fail; the loop then
// stays stopped and the error wraps ErrAudioUnavailable. Callers may ignore
// it: the game never depends on sound.
func (m *MusicLoop) Start() error {
	m.mu.Lock()
	if !m.enabled || m.state != StateStopped || len(m.cfg.Melody) == 0 {
		m.mu.Unlock()
		return nil
	}
	m.state = StateStarting
	m.gen++
	gen := m.gen
	engine := m.engine
	m.mu.Unlock()

	// Opening the device can block, so it runs without the lock.
	if engine == nil {
		e, err := m.factory(m.cfg)
		if err != nil {
			return m.failStart(gen, err)
		}
		engine = e
	}
	if err := engine.Resume(); err != nil {
		m.keepEngine(engine)
		return m.failStart(gen, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.keepEngineLocked(engine)
	if m.state != StateStarting || m.gen != gen {
		// Stopped or disabled while starting
		return nil
	}

	m.state = StatePlaying
	m.step = 0
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.run(m.stop, m.done)

	m.logger.Debug("music started", "tempo", m.tempo, "notes", len(m.cfg.Melody))
	return nil
}

// Stop halts playback. Notes already playing fade out on their own.
// Safe to call in any state.
func (m *MusicLoop) Stop() {
	m.mu.Lock()
	if m.state == StateStopped {
		m.mu.Unlock()
		return
	}
	wasPlaying := m.state == StatePlaying
	m.state = StateStopped
	m.gen++
	stop, done := m.stop, m.done
	m.stop, m.done = nil, nil
	engine := m.engine
	m.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	if wasPlaying && engine != nil {
		engine.Hush()
	}
	m.logger.Debug("music stopped")
}

// SetEnabled turns music on or off. Disabling stops playback right away;
// enabling does not start it.
func (m *MusicLoop) SetEnabled(on bool) {
	m.mu.Lock()
	m.enabled = on
	m.mu.Unlock()

	if !on {
		m.Stop()
	}
}

// Enabled reports whether music is allowed to play.
func (m *MusicLoop) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Playing reports whether notes are being scheduled.
func (m *MusicLoop) Playing() bool {
	return m.State() == StatePlaying
}

// State returns the playback state.
func (m *MusicLoop) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Step returns the index of the next melody note.
func (m *MusicLoop) Step() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Close stops playback and releases the engine.
func (m *MusicLoop) Close() error {
	m.Stop()

	m.mu.Lock()
	engine := m.engine
	m.engine = nil
	m.mu.Unlock()

	if engine == nil {
		return nil
	}
	return engine.Close()
}

func (m *MusicLoop) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.tempo)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.playNext(stop)
		}
	}
}

// playNext plays the current note and advances the step.
func (m *MusicLoop) playNext(stop chan struct{}) {
	m.mu.Lock()
	if m.state != StatePlaying || m.stop != stop {
		m.mu.Unlock()
		return
	}
	freq := m.cfg.Melody[m.step%len(m.cfg.Melody)]
	m.step = (m.step + 1) % len(m.cfg.Melody)
	engine := m.engine
	m.mu.Unlock()

	engine.PlayNote(freq)
}

func (m *MusicLoop) failStart(gen int, err error) error {
	m.mu.Lock()
	if m.state == StateStarting && m.gen == gen {
		m.state = StateStopped
	}
	m.mu.Unlock()

	m.logger.Warn("music unavailable", "err", err)
	return fmt.Errorf("audio: %w: %v", ErrAudioUnavailable, err)
}

func (m *MusicLoop) keepEngine(e Engine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keepEngineLocked(e)
}

// keepEngineLocked stores e as the loop's engine. A duplicate opened by a
// racing start is closed.
func (m *MusicLoop) keepEngineLocked(e Engine) {
	switch {
	case m.engine == nil:
		m.engine = e
	case m.engine != e:
		e.Close() //nolint:errcheck // Best-effort cleanup of the duplicate
	}
}
