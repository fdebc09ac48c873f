package life

import (
	"log"

	"gridkit/internal/core"
	"gridkit/internal/pattern"
	pcore "gridkit/pkg/core"
	"gridkit/pkg/grid"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cur  *grid.Grid[uint8]
	nxt  *grid.Grid[uint8]
	seed *grid.Grid[uint8]
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: grid.NewSized[uint8](w, h, 0), nxt: grid.NewSized[uint8](w, h, 0)}
}

// SetPattern makes Reset place p in the centre of an empty board instead of
// filling it randomly.
func (l *Life) SetPattern(p *grid.Grid[uint8]) { l.seed = p }

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.SizeOf(l.cur) }

// Grid exposes the current generation.
func (l *Life) Grid() *grid.Grid[uint8] { return l.cur }

// Reset seeds the board from the pattern, or randomly when there is none.
func (l *Life) Reset(seed int64) {
	if l.seed == nil {
		pcore.NewRNG(seed).FillBinary(l.cur)
		return
	}
	l.cur.Update(func(uint8, int, int) uint8 { return 0 })
	pattern.Stamp(l.cur, l.seed, pattern.Centre(l.cur, l.seed))
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur := l.cur
	w, h := cur.Width(), cur.Height()
	l.nxt.Update(func(_ uint8, x, y int) uint8 {
		neighbors := 0
		for _, d := range grid.Neighbors8 {
			nx := (x + d.X + w) % w
			ny := (y + d.Y + h) % h
			neighbors += int(cur.At(nx, ny))
		}
		alive := cur.At(x, y) == 1
		if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
			return 1
		}
		return 0
	})
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		l := New(c.Width, c.Height)
		if c.Pattern != "" {
			cg, err := pattern.LoadFile(c.Pattern)
			if err != nil {
				log.Printf("life: %v; using random board", err)
				return l
			}
			l.SetPattern(pattern.ToCells(cg, c.Alive))
		}
		return l
	})
}
