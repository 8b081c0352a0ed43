package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %v: %s", ErrInvalidConfig, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks the invariants the game session relies on.
// Returns nil or a *ValidationError.
func (c LetterDashConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	g := c.Game
	seen := make(map[rune]bool)
	for _, r := range g.Alphabet {
		if r < 'A' || r > 'Z' {
			add("alphabet may only contain A-Z, got %q", r)
			continue
		}
		if seen[r] {
			add("alphabet letter %q repeats", r)
		}
		seen[r] = true
	}
	if len(seen) < 2 {
		add("alphabet needs at least 2 distinct letters")
	}
	if g.StartTimeMs <= 0 {
		add("start_time_ms must be positive")
	}
	if g.MinTimeMs <= 0 || g.MinTimeMs > g.StartTimeMs {
		add("min_time_ms must be in (0, start_time_ms]")
	}
	if g.DecayFactor <= 0 || g.DecayFactor > 1 {
		add("decay_factor must be in (0, 1]")
	}
	if g.PadSize < 1 {
		add("pad_size must be at least 1")
	}
	if g.AttemptsMax < 1 {
		add("attempts_max must be at least 1")
	}
	if g.CorrectPerLevel < 1 {
		add("correct_per_level must be at least 1")
	}
	if g.MaxLevel < 1 {
		add("max_level must be at least 1")
	}

	s := c.Scoring
	if s.Base < 0 || s.StreakMultiplier < 0 {
		add("scoring base and streak_multiplier must not be negative")
	}
	if s.SpeedDivisor <= 0 {
		add("scoring speed_divisor must be positive")
	}

	d := c.Delays
	if d.HitMs < 0 || d.LevelUpMs < 0 || d.MissMs < 0 || d.FinishMs < 0 {
		add("delays must not be negative")
	}

	a := c.Audio
	if a.TempoMs <= 0 {
		add("audio tempo_ms must be positive")
	}
	if len(a.Melody) == 0 {
		add("audio melody must not be empty")
	}
	if a.SampleRate <= 0 {
		add("audio sample_rate must be positive")
	}
	if a.Volume < 0 {
		add("audio volume must not be negative")
	}
	n := a.Note
	if n.DurationMs <= 0 || n.AttackMs < 0 || n.AttackMs > n.DecayMs || n.DecayMs > n.DurationMs {
		add("audio note needs 0 <= attack_ms <= decay_ms <= duration_ms and duration_ms > 0")
	}
	if n.Peak <= 0 {
		add("audio note peak must be positive")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
