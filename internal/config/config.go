// Package config loads the YAML configuration of the dialogue responder and
// watches the optional classification-rules override file for changes.
package config

import (
	"fmt"
	"os"
	"strconv"

	"nechto/internal/language"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration. Everything has a working default;
// a missing config file is not an error.
type Config struct {
	Name string `yaml:"name"`

	// DefaultLanguage is the hint applied when the caller gives none:
	// auto, ru, or en. Unrecognized values degrade to auto.
	DefaultLanguage string `yaml:"default_language"`

	Logging LoggingConfig `yaml:"logging"`

	// RulesFile optionally points at a YAML classification table that
	// replaces the built-in one. When set, the chat TUI watches it and
	// reloads on change.
	RulesFile string `yaml:"rules_file"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:            "nechto",
		DefaultLanguage: string(language.HintAuto),
	}
}

// Load reads path, overlays it on the defaults, then applies environment
// overrides. An empty path or a missing file yields the defaults (plus env).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays the scalar knobs from the environment:
// NECHTO_LANG, NECHTO_VERBOSE, NECHTO_RULES.
func applyEnv(cfg *Config) {
	if v := os.Getenv("NECHTO_LANG"); v != "" {
		cfg.DefaultLanguage = v
	}
	if v := os.Getenv("NECHTO_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.Verbose = b
		}
	}
	if v := os.Getenv("NECHTO_RULES"); v != "" {
		cfg.RulesFile = v
	}
}

// LanguageHint returns the configured default hint, normalized.
func (c Config) LanguageHint() language.Hint {
	return language.Normalize(language.Hint(c.DefaultLanguage))
}
