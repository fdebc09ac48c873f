package elementary

import (
	"strconv"

	"gridkit/internal/core"
	"gridkit/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary runs a one-dimensional Wolfram code. Row 0 holds the newest
// generation and older generations scroll downwards.
type Elementary struct {
	w, h  int
	rule  uint8
	cells *grid.Grid[uint8]
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	return &Elementary{w: w, h: h, rule: rule, cells: grid.NewSized[uint8](w, h, 0)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.SizeOf(e.cells) }

// Grid exposes the generation history, newest first.
func (e *Elementary) Grid() *grid.Grid[uint8] { return e.cells }

// Reset clears the history and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.cells = grid.NewSized[uint8](e.w, e.h, 0)
	if e.w > 0 && e.h > 0 {
		e.cells.Set(e.w/2, 0, 1)
	}
}

// Step computes the next generation, drops the oldest and pushes the new one
// on top.
func (e *Elementary) Step() {
	if e.w == 0 || e.h == 0 {
		return
	}
	top := e.cells.Row(0)
	next := make([]uint8, e.w)
	for x := range next {
		left := top[(x-1+e.w)%e.w]
		center := top[x]
		right := top[(x+1)%e.w]
		idx := (left << 2) | (center << 1) | right
		next[x] = (e.rule >> idx) & 1
	}

	history := grid.New[uint8]()
	for y := 0; y < e.h-1; y++ {
		history.InsertRow(e.cells.Row(y))
	}
	history.InsertRowFront(next)
	e.cells = history
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
