package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Layout   string
	Scale    int
	TPS      int
	RPS      int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "seats", Scale: 6, TPS: 60, RPS: 4, Seed: 42, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (seats, seats-visible)")
	fs.StringVar(&c.Layout, "layout", c.Layout, "seat layout file; random hall when empty")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RPS, "rps", c.RPS, "rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random halls")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 to hide")
}

// SimOptions returns the factory options implied by the flags.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.Layout != "" {
		opts["layout"] = c.Layout
	}
	return opts
}
