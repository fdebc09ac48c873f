//go:build ebiten

package render

import (
	"image/color"

	"gridkit/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image in sync with a byte grid.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter image and draws it scaled onto dst. Grids
// of a different size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid[uint8], palette []color.RGBA, on, off color.Color, scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	Fill(gp.buf, g, palette, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
