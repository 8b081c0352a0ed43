package letterdash

import (
	"math"
	"time"

	"github.com/vovakirdan/letter-dash/internal/config"
)

// ScoringPolicy computes the points awarded for a correct answer.
//
//	gain = base + max(0, floor((allowedMs - reactionMs) / speedDivisor)) + streakBefore*streakMultiplier
type ScoringPolicy struct {
	base             int
	speedDivisor     float64
	streakMultiplier int
}

// NewScoringPolicy creates a policy from the scoring configuration.
func NewScoringPolicy(cfg config.ScoringConfig) ScoringPolicy {
	return ScoringPolicy{
		base:             cfg.Base,
		speedDivisor:     cfg.SpeedDivisor,
		streakMultiplier: cfg.StreakMultiplier,
	}
}

// Gain returns the points for a hit. streakBefore is the streak before this
// hit is counted. The result is never below base.
func (p ScoringPolicy) Gain(reactionMs float64, allowedMs, streakBefore int) int {
	speed := int(math.Floor((float64(allowedMs) - reactionMs) / p.speedDivisor))
	if speed < 0 {
		speed = 0
	}
	if streakBefore < 0 {
		streakBefore = 0
	}
	return p.base + speed + streakBefore*p.streakMultiplier
}

// Milliseconds converts a duration to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
