// Package term draws byte grids on a terminal through tcell and runs an
// interactive viewer around a simulation.
package term

import (
	"context"
	"time"

	"gridkit/internal/core"
	"gridkit/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

// DefaultGlyphs renders dead cells blank, live cells as full blocks and any
// further state as a shaded block.
var DefaultGlyphs = []rune{' ', '█', '▒', '░'}

// Painter writes grid cells to a tcell screen, one terminal cell per grid
// cell.
type Painter struct {
	Glyphs []rune
	Style  tcell.Style
}

// NewPainter returns a Painter using DefaultGlyphs.
func NewPainter() *Painter {
	return &Painter{Glyphs: DefaultGlyphs, Style: tcell.StyleDefault}
}

// Glyph returns the rune drawn for value v.
func (p *Painter) Glyph(v uint8) rune {
	if len(p.Glyphs) == 0 {
		return '?'
	}
	if int(v) >= len(p.Glyphs) {
		return p.Glyphs[len(p.Glyphs)-1]
	}
	return p.Glyphs[v]
}

// Draw paints g into the top-left corner of s, clipping to the screen size.
// It does not call Show.
func (p *Painter) Draw(s tcell.Screen, g *grid.Grid[uint8]) {
	sw, sh := s.Size()
	g.ForEach(func(v uint8, x, y int) {
		if x < sw && y < sh {
			s.SetContent(x, y, p.Glyph(v), nil, p.Style)
		}
	})
}

// Run shows sim on s until the user quits or ctx is done. Space pauses, n
// advances one tick while paused, r resets with seed, q or Esc quits.
func Run(ctx context.Context, s tcell.Screen, sim core.Sim, tps int, seed int64) error {
	p := NewPainter()
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(core.NewFixedStep(tps).Interval())
	defer ticker.Stop()

	paused := false
	redraw := func() {
		s.Clear()
		p.Draw(s, sim.Grid())
		s.Show()
	}
	redraw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if paused {
				continue
			}
			sim.Step()
			redraw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				redraw()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					sim.Step()
					redraw()
				case ev.Rune() == 'r':
					sim.Reset(seed)
					redraw()
				}
			}
		}
	}
}
