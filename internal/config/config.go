// Package config provides YAML/TOML configuration loading, environment
// overrides and difficulty management for Letter Dash.
package config

import (
	"fmt"
	"strings"
)

// LetterDashConfig contains all configuration for the letter game.
// Every constant the session uses is injectable through this struct.
type LetterDashConfig struct {
	Game    GameConfig    `yaml:"game" toml:"game"`
	Scoring ScoringConfig `yaml:"scoring" toml:"scoring"`
	Delays  DelayConfig   `yaml:"delays" toml:"delays"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
}

// GameConfig defines round, level and attempt parameters.
type GameConfig struct {
	Alphabet        string  `yaml:"alphabet" toml:"alphabet" env:"ALPHABET"`
	StartTimeMs     int     `yaml:"start_time_ms" toml:"start_time_ms" env:"START_TIME_MS"`
	MinTimeMs       int     `yaml:"min_time_ms" toml:"min_time_ms" env:"MIN_TIME_MS"`
	DecayFactor     float64 `yaml:"decay_factor" toml:"decay_factor" env:"DECAY_FACTOR"` // Applied to the time budget once per level-up
	PadSize         int     `yaml:"pad_size" toml:"pad_size" env:"PAD_SIZE"`             // Letters shown on the tap pad (presentation only)
	AttemptsMax     int     `yaml:"attempts_max" toml:"attempts_max" env:"ATTEMPTS_MAX"`
	CorrectPerLevel int     `yaml:"correct_per_level" toml:"correct_per_level" env:"CORRECT_PER_LEVEL"`
	MaxLevel        int     `yaml:"max_level" toml:"max_level" env:"MAX_LEVEL"`
}

// ScoringConfig defines the point formula constants.
type ScoringConfig struct {
	Base             int     `yaml:"base" toml:"base" env:"SCORE_BASE"`
	SpeedDivisor     float64 `yaml:"speed_divisor" toml:"speed_divisor" env:"SCORE_SPEED_DIVISOR"`
	StreakMultiplier int     `yaml:"streak_multiplier" toml:"streak_multiplier" env:"SCORE_STREAK_MULTIPLIER"`
}

// DelayConfig defines presentation pauses between a resolved round and the
// next one. FinishMs holds the last hit on screen before the finish screen.
type DelayConfig struct {
	HitMs     int `yaml:"hit_ms" toml:"hit_ms" env:"DELAY_HIT_MS"`
	LevelUpMs int `yaml:"level_up_ms" toml:"level_up_ms" env:"DELAY_LEVEL_UP_MS"`
	MissMs    int `yaml:"miss_ms" toml:"miss_ms" env:"DELAY_MISS_MS"`
	FinishMs  int `yaml:"finish_ms" toml:"finish_ms" env:"DELAY_FINISH_MS"`
}

// AudioConfig defines the background music loop.
type AudioConfig struct {
	Enabled    bool      `yaml:"enabled" toml:"enabled" env:"MUSIC"`
	TempoMs    int       `yaml:"tempo_ms" toml:"tempo_ms" env:"MUSIC_TEMPO_MS"`
	Volume     float64   `yaml:"volume" toml:"volume" env:"MUSIC_VOLUME"`
	SampleRate int       `yaml:"sample_rate" toml:"sample_rate" env:"MUSIC_SAMPLE_RATE"`
	Note       NoteShape `yaml:"note" toml:"note"`
	Melody     []float64 `yaml:"melody" toml:"melody" env:"MUSIC_MELODY" envSeparator:","` // Note frequencies in Hz
}

// NoteShape defines the envelope of a single melody note. The gain rises
// exponentially to Peak by AttackMs, falls back to near silence by DecayMs
// (both measured from the note start) and the note ends at DurationMs.
type NoteShape struct {
	DurationMs int     `yaml:"duration_ms" toml:"duration_ms"`
	AttackMs   int     `yaml:"attack_ms" toml:"attack_ms"`
	DecayMs    int     `yaml:"decay_ms" toml:"decay_ms"`
	Peak       float64 `yaml:"peak" toml:"peak"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a flag value into a preset.
// An empty string means "normal".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables time decay.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LetterDashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.StartTimeMs = 2000
		cfg.Game.AttemptsMax = 8
		cfg.Game.DecayFactor = 0.97
	case DifficultyHard:
		cfg.Game.StartTimeMs = 1200
		cfg.Game.AttemptsMax = 4
		cfg.Game.DecayFactor = 0.92
	case DifficultyFixed:
		cfg.Game.DecayFactor = 1.0
	}

	// Presets never push the floor above the starting budget.
	if cfg.Game.MinTimeMs > cfg.Game.StartTimeMs {
		cfg.Game.MinTimeMs = cfg.Game.StartTimeMs
	}
}
