package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML LetterDashConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultLetterDashConfig()
	if fromYAML.Game != def.Game {
		t.Errorf("Game section differs:\nyaml: %+v\ncode: %+v", fromYAML.Game, def.Game)
	}
	if fromYAML.Scoring != def.Scoring {
		t.Errorf("Scoring section differs: %+v vs %+v", fromYAML.Scoring, def.Scoring)
	}
	if fromYAML.Delays != def.Delays {
		t.Errorf("Delays section differs: %+v vs %+v", fromYAML.Delays, def.Delays)
	}
	if len(fromYAML.Audio.Melody) != len(def.Audio.Melody) {
		t.Errorf("Melody length = %d, expected %d", len(fromYAML.Audio.Melody), len(def.Audio.Melody))
	}
	if err := def.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomYAMLIsPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "game:\n  start_time_ms: 2000\n  max_level: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.StartTimeMs != 2000 || cfg.Game.MaxLevel != 3 {
		t.Errorf("custom values not applied: %+v", cfg.Game)
	}
	// Untouched keys keep their defaults
	if cfg.Game.AttemptsMax != 6 || cfg.Scoring.Base != 10 {
		t.Errorf("defaults lost: attempts=%d base=%d", cfg.Game.AttemptsMax, cfg.Scoring.Base)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[game]\nalphabet = \"ABC\"\ncorrect_per_level = 4\n\n[audio]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Alphabet != "ABC" || cfg.Game.CorrectPerLevel != 4 {
		t.Errorf("TOML values not applied: %+v", cfg.Game)
	}
	if cfg.Audio.Enabled {
		t.Error("audio.enabled should be false")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultLetterDashConfig()
	environ := map[string]string{
		"LETTERDASH_START_TIME_MS": "1800",
		"LETTERDASH_MUSIC":         "false",
		"LETTERDASH_MUSIC_MELODY":  "440,880",
		"UNRELATED":                "1",
	}

	if err := ApplyEnv(&cfg, environ); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Game.StartTimeMs != 1800 {
		t.Errorf("StartTimeMs = %d, expected 1800", cfg.Game.StartTimeMs)
	}
	if cfg.Audio.Enabled {
		t.Error("music should be disabled by env")
	}
	if len(cfg.Audio.Melody) != 2 || cfg.Audio.Melody[1] != 880 {
		t.Errorf("Melody = %v, expected [440 880]", cfg.Audio.Melody)
	}
	// Not overridden
	if cfg.Game.MinTimeMs != 420 {
		t.Errorf("MinTimeMs = %d, expected default 420", cfg.Game.MinTimeMs)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	cfg := DefaultLetterDashConfig()
	err := ApplyEnv(&cfg, map[string]string{"LETTERDASH_MAX_LEVEL": "ten"})
	if err == nil {
		t.Fatal("expected error for non-numeric override")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficultyPreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultLetterDashConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Game.AttemptsMax != 4 || cfg.Game.StartTimeMs != 1200 {
		t.Errorf("hard preset not applied: %+v", cfg.Game)
	}

	cfg = DefaultLetterDashConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Game.DecayFactor != 1.0 {
		t.Errorf("fixed preset should disable decay, got %f", cfg.Game.DecayFactor)
	}

	cfg = DefaultLetterDashConfig()
	cfg.Game.MinTimeMs = 1500
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Game.MinTimeMs > cfg.Game.StartTimeMs {
		t.Errorf("preset left min %d above start %d", cfg.Game.MinTimeMs, cfg.Game.StartTimeMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LetterDashConfig)
		problem string
	}{
		{"single letter", func(c *LetterDashConfig) { c.Game.Alphabet = "AAAA" }, "at least 2 distinct"},
		{"lowercase", func(c *LetterDashConfig) { c.Game.Alphabet = "abc" }, "only contain A-Z"},
		{"min above start", func(c *LetterDashConfig) { c.Game.MinTimeMs = 5000 }, "min_time_ms"},
		{"decay above one", func(c *LetterDashConfig) { c.Game.DecayFactor = 1.2 }, "decay_factor"},
		{"no attempts", func(c *LetterDashConfig) { c.Game.AttemptsMax = 0 }, "attempts_max"},
		{"no levels", func(c *LetterDashConfig) { c.Game.MaxLevel = 0 }, "max_level"},
		{"zero divisor", func(c *LetterDashConfig) { c.Scoring.SpeedDivisor = 0 }, "speed_divisor"},
		{"empty melody", func(c *LetterDashConfig) { c.Audio.Melody = nil }, "melody"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLetterDashConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error should be *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.problem) {
				t.Errorf("error %q should mention %q", err.Error(), tc.problem)
			}
		})
	}
}

func TestResolveAppliesPresetAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game:\n  attempts_max: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Hard preset sets attempts back to 4, so the file value is overridden
	cfg, err := Resolve(path, DifficultyHard)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Game.AttemptsMax != 4 {
		t.Errorf("AttemptsMax = %d, expected 4", cfg.Game.AttemptsMax)
	}

	if _, err := Resolve(path, DifficultyNormal); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected invalid config error, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultLetterDashConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "start_time_ms: 1600") {
		t.Errorf("marshaled YAML missing start_time_ms:\n%s", data)
	}
}
