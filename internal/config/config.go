package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/structcalc/gobeam/internal/check"
)

// Config carries the tool-level settings a project keeps next to its beam
// jobs: the default usage category and deflection limit overrides.
type Config struct {
	Usage  string       `yaml:"usage"`
	Limits check.Limits `yaml:"limits"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Limits: check.DefaultLimits}
}

// Load reads a YAML config file, after loading a .env file if one exists,
// and applies environment-variable overrides. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if usage := os.Getenv("GOBEAM_USAGE"); usage != "" {
		cfg.Usage = usage
	}

	// An override that zeroes every field of a rule falls back to the
	// defaults for that category.
	if cfg.Limits.Initial == (check.LimitRule{}) {
		cfg.Limits.Initial = check.DefaultLimits.Initial
	}
	if cfg.Limits.ShortTerm == (check.LimitRule{}) {
		cfg.Limits.ShortTerm = check.DefaultLimits.ShortTerm
	}
	if cfg.Limits.LongTerm == (check.LimitRule{}) {
		cfg.Limits.LongTerm = check.DefaultLimits.LongTerm
	}

	return cfg, nil
}
