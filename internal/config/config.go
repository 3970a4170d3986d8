// Package config loads run settings for the seats command.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"seatca/internal/seating"
)

// Config controls which rules run and how.
type Config struct {
	// Rules names the rules to run, in output order.
	Rules []string `yaml:"rules"`
	// Thresholds overrides the abandon threshold per rule name.
	Thresholds map[string]int `yaml:"thresholds"`
	// MaxRounds bounds each run; zero means unbounded.
	MaxRounds int    `yaml:"max_rounds"`
	Workers   int    `yaml:"workers"`
	LogLevel  string `yaml:"log_level"`
	Print     bool   `yaml:"print"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Rules:     []string{seating.AdjacentRule.Name, seating.VisibleRule.Name},
		MaxRounds: 10000,
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	// Validate succeeded, so the keys resolve.
	c.Thresholds, _ = c.thresholds()
	return c, nil
}

// Validate checks field ranges and names.
func (c Config) Validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("config: no rules selected")
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("config: max_rounds must not be negative, got %d", c.MaxRounds)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err := c.SelectedRules()
	return err
}

// thresholds returns the overrides keyed by canonical rule name. Keys match
// rule names case-insensitively; two keys naming the same rule are rejected.
func (c Config) thresholds() (map[string]int, error) {
	out := make(map[string]int, len(c.Thresholds))
	for key, n := range c.Thresholds {
		r, err := seating.RuleByName(key)
		if err != nil {
			return nil, fmt.Errorf("config: thresholds: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("config: threshold for %s must be positive, got %d", key, n)
		}
		if _, dup := out[r.Name]; dup {
			return nil, fmt.Errorf("config: thresholds: rule %s is set more than once", r.Name)
		}
		out[r.Name] = n
	}
	return out, nil
}

// SelectedRules resolves Rules with threshold overrides applied. Each rule
// may be selected once.
func (c Config) SelectedRules() ([]seating.Rule, error) {
	overrides, err := c.thresholds()
	if err != nil {
		return nil, err
	}
	out := make([]seating.Rule, 0, len(c.Rules))
	seen := make(map[string]bool, len(c.Rules))
	for _, name := range c.Rules {
		r, err := seating.RuleByName(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("config: rule %s selected more than once", r.Name)
		}
		seen[r.Name] = true
		out = append(out, r.WithThreshold(overrides[r.Name]))
	}
	return out, nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
