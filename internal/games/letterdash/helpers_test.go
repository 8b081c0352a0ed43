package letterdash

import (
	"testing"
	"time"

	"github.com/vovakirdan/letter-dash/internal/config"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeMusic struct {
	enabled bool
	starts  int
	stops   int
}

func (m *fakeMusic) Start() error {
	if m.enabled {
		m.starts++
	}
	return nil
}

func (m *fakeMusic) Stop() { m.stops++ }

func (m *fakeMusic) SetEnabled(on bool) { m.enabled = on }

func (m *fakeMusic) Enabled() bool { return m.enabled }

type fakeKeeper struct {
	best    int
	records []Summary
}

func (k *fakeKeeper) Best() int { return k.best }

func (k *fakeKeeper) Record(s Summary) (int, bool) {
	k.records = append(k.records, s)
	if s.Score > k.best {
		k.best = s.Score
		return k.best, true
	}
	return k.best, false
}

// instantConfig returns the default config with presentation pauses removed,
// so a resolved round is followed by the next one right away.
func instantConfig() config.LetterDashConfig {
	cfg := config.DefaultLetterDashConfig()
	cfg.Delays = config.DelayConfig{}
	return cfg
}

func newTestSession(t *testing.T, cfg config.LetterDashConfig, opts ...Option) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now), WithSeed(42)}, opts...)
	s, err := NewSession(cfg, opts...)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, clock
}

// wrongLetter returns a letter of the alphabet that is not the target.
func wrongLetter(s *Session) rune {
	for _, r := range s.cfg.Game.Alphabet {
		if r != s.target {
			return r
		}
	}
	return 0
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
