package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override (LETTERDASH_START_TIME_MS, ...).
const EnvPrefix = "LETTERDASH_"

// Load loads Letter Dash configuration.
// Search order: customPath -> ~/.letterdash/config.yaml -> ./configs/letterdash.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path ending in .toml is decoded as TOML.
func Load(customPath string) (LetterDashConfig, error) {
	cfg := DefaultLetterDashConfig()

	// Try custom path first
	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultLetterDashConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/letterdash.yaml"); err == nil {
		candidate := DefaultLetterDashConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLetterDashYAML, &cfg); err != nil {
		return DefaultLetterDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Resolve builds the effective configuration: file (see Load), then the
// difficulty preset, then LETTERDASH_* environment overrides. The result is
// validated before it is returned.
func Resolve(customPath string, preset DifficultyPreset) (LetterDashConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}

	ApplyPreset(&cfg, preset)

	if err := ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides config values from environment variables carrying
// EnvPrefix. A nil environ reads the process environment.
func ApplyEnv(cfg *LetterDashConfig, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg LetterDashConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// decodeFile reads a YAML or TOML config file into cfg.
func decodeFile(path string, cfg *LetterDashConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".letterdash", filename)
}
