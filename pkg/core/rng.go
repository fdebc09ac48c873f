package core

import (
	"math/rand/v2"

	"gridkit/pkg/grid"
)

// RNG wraps math/rand/v2 with a fixed PCG stream so seeds replay exactly.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary sets every cell of g to 0 or 1.
func (r *RNG) FillBinary(g *grid.Grid[uint8]) {
	g.Update(func(uint8, int, int) uint8 {
		return uint8(r.r.IntN(2))
	})
}

// FillSparse sets roughly one cell in n to on and the rest to 0.
func (r *RNG) FillSparse(g *grid.Grid[uint8], n int, on uint8) {
	g.Update(func(uint8, int, int) uint8 {
		if n > 0 && r.r.IntN(n) == 0 {
			return on
		}
		return 0
	})
}
