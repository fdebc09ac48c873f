package core

import (
	"image/color"
	"sort"

	"gridkit/pkg/grid"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// SizeOf reports the dimensions of g.
func SizeOf[T comparable](g *grid.Grid[T]) Size {
	return Size{W: g.Width(), H: g.Height()}
}

// Sim is an automaton that advances a byte grid one generation at a time.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Grid() *grid.Grid[uint8]
}

// PaletteProvider is implemented by sims whose cells are more than on/off.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
