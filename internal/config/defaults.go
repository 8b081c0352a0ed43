package config

import (
	_ "embed"
)

//go:embed defaults/letterdash.yaml
var defaultLetterDashYAML []byte

// DefaultMelody is the sixteen-step loop played during a session (Hz).
var DefaultMelody = []float64{
	523.25, 659.25, 783.99, 659.25, // C5 E5 G5 E5
	587.33, 659.25, 880.00, 659.25, // D5 E5 A5 E5
	523.25, 659.25, 783.99, 659.25,
	493.88, 587.33, 659.25, 587.33, // B4 D5 E5 D5
}

// DefaultLetterDashConfig returns the default Letter Dash configuration.
func DefaultLetterDashConfig() LetterDashConfig {
	return LetterDashConfig{
		Game: GameConfig{
			Alphabet:        "ASDFGHJKLQWERTYUIOPZXCVBNM",
			StartTimeMs:     1600,
			MinTimeMs:       420,
			DecayFactor:     0.95,
			PadSize:         6,
			AttemptsMax:     6,
			CorrectPerLevel: 10,
			MaxLevel:        10,
		},
		Scoring: ScoringConfig{
			Base:             10,
			SpeedDivisor:     10,
			StreakMultiplier: 3,
		},
		Delays: DelayConfig{
			HitMs:     260,
			LevelUpMs: 420,
			MissMs:    420,
			FinishMs:  420,
		},
		Audio: AudioConfig{
			Enabled:    true,
			TempoMs:    160,
			Volume:     0.06,
			SampleRate: 44100,
			Note: NoteShape{
				DurationMs: 160,
				AttackMs:   10,
				DecayMs:    140,
				Peak:       0.25,
			},
			Melody: append([]float64(nil), DefaultMelody...),
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLetterDashYAML
}
