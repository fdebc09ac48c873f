package life

import "strconv"

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Alive   string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Alive: "O#*"}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["alive"]; ok && v != "" {
		c.Alive = v
	}
	return c
}
