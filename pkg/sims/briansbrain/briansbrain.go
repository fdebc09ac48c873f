package briansbrain

import (
	"image/color"
	"strconv"

	"gridkit/internal/core"
	pcore "gridkit/pkg/core"
	"gridkit/pkg/grid"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = []color.RGBA{
	stateDead:  {R: 0, G: 0, B: 0, A: 255},
	stateOn:    {R: 255, G: 255, B: 255, A: 255},
	stateDying: {R: 60, G: 90, B: 200, A: 255},
}

// Config holds parameters for Brian's Brain.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
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
	return c
}

// Brain implements Brian's Brain on a bounded board whose outer ring stays
// dead.
type Brain struct {
	cur *grid.Grid[uint8]
	nxt *grid.Grid[uint8]
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	return &Brain{cur: grid.NewSized[uint8](w, h, stateDead), nxt: grid.NewSized[uint8](w, h, stateDead)}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.SizeOf(b.cur) }

// Grid exposes the current state.
func (b *Brain) Grid() *grid.Grid[uint8] { return b.cur }

// Palette maps cell states to colours.
func (b *Brain) Palette() []color.RGBA { return palette }

// Reset randomizes interior cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	pcore.NewRNG(seed).FillSparse(b.cur, 8, stateOn)
	b.cur.Update(func(v uint8, x, y int) uint8 {
		if b.cur.IsBorder(x, y) {
			return stateDead
		}
		return v
	})
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	cur := b.cur
	b.nxt.Update(func(_ uint8, x, y int) uint8 {
		if cur.IsBorder(x, y) {
			return stateDead
		}
		switch cur.At(x, y) {
		case stateOn:
			return stateDying
		case stateDying:
			return stateDead
		}
		neighbors := 0
		for _, d := range grid.Neighbors8 {
			if cur.At(x+d.X, y+d.Y) == stateOn {
				neighbors++
			}
		}
		if neighbors == 2 {
			return stateOn
		}
		return stateDead
	})
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
