package letterdash

import (
	"testing"
	"time"

	"github.com/vovakirdan/letter-dash/internal/config"
)

func TestScoringGain(t *testing.T) {
	p := NewScoringPolicy(config.DefaultLetterDashConfig().Scoring)

	tests := []struct {
		name       string
		reactionMs float64
		allowedMs  int
		streak     int
		expected   int
	}{
		{"fast first hit", 100, 1600, 0, 160},
		{"fast with streak", 100, 1600, 2, 166},
		{"just under budget", 1599.5, 1600, 0, 10},
		{"speed bonus floors", 1590.01, 1600, 0, 10},
		{"exact ten ms", 1590, 1600, 0, 11},
		{"over budget clamps", 2000, 1600, 1, 13},
		{"instant", 0, 420, 0, 52},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Gain(tc.reactionMs, tc.allowedMs, tc.streak); got != tc.expected {
				t.Errorf("Gain(%v, %d, %d) = %d, expected %d",
					tc.reactionMs, tc.allowedMs, tc.streak, got, tc.expected)
			}
		})
	}
}

func TestScoringGainNeverBelowBase(t *testing.T) {
	p := NewScoringPolicy(config.ScoringConfig{Base: 7, SpeedDivisor: 10, StreakMultiplier: 3})
	for rt := 0.0; rt < 5000; rt += 37.5 {
		if got := p.Gain(rt, 1600, 0); got < 7 {
			t.Fatalf("Gain(%v) = %d, below base", rt, got)
		}
	}
}

func TestScoringGainMonotonic(t *testing.T) {
	p := NewScoringPolicy(config.DefaultLetterDashConfig().Scoring)

	for _, allowed := range []int{420, 1000, 1600} {
		// Slower answers never earn more
		for _, streak := range []int{0, 1, 5, 40} {
			prev := p.Gain(0, allowed, streak)
			for rt := 0.5; rt < float64(allowed); rt += 0.5 {
				got := p.Gain(rt, allowed, streak)
				if got > prev {
					t.Fatalf("allowed=%d streak=%d: Gain rose from %d to %d at %vms", allowed, streak, prev, got, rt)
				}
				if got < 10 {
					t.Fatalf("allowed=%d streak=%d: Gain(%v) = %d, below base", allowed, streak, rt, got)
				}
				prev = got
			}
		}

		// Longer streaks never earn less
		for rt := 0.0; rt < float64(allowed); rt += 13.7 {
			prev := p.Gain(rt, allowed, 0)
			for streak := 1; streak <= 50; streak++ {
				got := p.Gain(rt, allowed, streak)
				if got < prev {
					t.Fatalf("allowed=%d rt=%v: Gain fell from %d to %d at streak %d", allowed, rt, prev, got, streak)
				}
				prev = got
			}
		}
	}
}

func TestMilliseconds(t *testing.T) {
	if got := Milliseconds(1500 * time.Microsecond); got != 1.5 {
		t.Errorf("Milliseconds(1.5ms) = %v, expected 1.5", got)
	}
}
