package config

import "math"

// DifficultyPolicy maps the current time budget to the next level's budget.
// It is a pure value: applying it has no side effects.
type DifficultyPolicy struct {
	minTimeMs   int
	decayFactor float64
}

// NewDifficultyPolicy creates a policy from the game configuration.
func NewDifficultyPolicy(cfg GameConfig) DifficultyPolicy {
	return DifficultyPolicy{
		minTimeMs:   cfg.MinTimeMs,
		decayFactor: cfg.DecayFactor,
	}
}

// NextAllowedMs returns max(minTimeMs, floor(previousMs * decayFactor)).
// Applied exactly once per level-up.
func (p DifficultyPolicy) NextAllowedMs(previousMs int) int {
	next := int(math.Floor(float64(previousMs) * p.decayFactor))
	if next < p.minTimeMs {
		return p.minTimeMs
	}
	return next
}

// AllowedMsAt returns the budget in effect at the given level (1-based) for
// a session that started with startMs.
func (p DifficultyPolicy) AllowedMsAt(startMs, level int) int {
	ms := startMs
	for l := 1; l < level; l++ {
		ms = p.NextAllowedMs(ms)
	}
	return ms
}
