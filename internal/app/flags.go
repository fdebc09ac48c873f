package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"gridkit/internal/core"
)

// ErrUnknownSim is returned when the requested simulation is not registered.
var ErrUnknownSim = errors.New("unknown sim")

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Rule    int
	Pattern string
	Steps   int
	Glyphs  string
	TUI     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, Rule: -1, Steps: 10, Glyphs: ".#o"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 keeps the sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 keeps the sim default)")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule for the elementary sim")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plain-text pattern file to seed life with")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to print in headless mode")
	fs.StringVar(&c.Glyphs, "glyphs", c.Glyphs, "characters used for cell states when printing")
	fs.BoolVar(&c.TUI, "tui", c.TUI, "run the interactive terminal viewer")
}

// SimOptions converts the flags into the key/value map sim factories read.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Rule >= 0 {
		opts["rule"] = strconv.Itoa(c.Rule)
	}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	return opts
}

// NewSim builds and resets the configured simulation.
func NewSim(c *Config) (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownSim, c.Sim, strings.Join(core.Names(), ", "))
	}
	sim := factory(c.SimOptions())
	sim.Reset(c.Seed)
	return sim, nil
}
