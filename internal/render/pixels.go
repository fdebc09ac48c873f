// Package render rasterizes byte grids into RGBA pixel buffers.
package render

import (
	"image/color"

	"gridkit/pkg/grid"
)

// fillBinaryRGBA writes one RGBA pixel per cell of g into buf: on for
// non-zero cells, off for zero cells.
func fillBinaryRGBA(buf []byte, g *grid.Grid[uint8], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := g.Width()
	g.ForEach(func(c uint8, x, y int) {
		base := (y*w + x) * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			return
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	})
}

// fillPaletteRGBA writes palette[cell] for every cell of g into buf. Values
// past the end of the palette use its last entry. When the palette is empty
// the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, g *grid.Grid[uint8], palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(g.Cells())*4])
		return
	}

	last := len(palette) - 1
	w := g.Width()
	g.ForEach(func(c uint8, x, y int) {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := (y*w + x) * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
}

// Fill rasterizes g into buf, using palette when it is non-nil and the
// on/off colours otherwise. buf must hold 4 bytes per cell.
func Fill(buf []byte, g *grid.Grid[uint8], palette []color.RGBA, on, off color.Color) {
	if palette != nil {
		fillPaletteRGBA(buf, g, palette)
		return
	}
	fillBinaryRGBA(buf, g, on, off)
}
