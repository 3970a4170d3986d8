package seats

import "strconv"

// Config controls the seat hall simulation.
type Config struct {
	Width  int
	Height int

	// Layout is a layout file to load. When empty, Reset generates a random
	// hall of Width x Height.
	Layout string

	Rule      string
	Threshold int

	SeatChance float64
	Seed       int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      96,
		Height:     96,
		Rule:       "adjacent",
		SeatChance: 0.7,
		Seed:       1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = v
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["seat_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeatChance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
