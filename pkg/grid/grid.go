// Package grid provides a dense, row-major 2D container built up one row at a
// time.
//
// Access is not bounds checked. Callers own the contract: rows must match the
// grid width once it is fixed, and coordinates must satisfy 0 <= x < Width()
// and 0 <= y < Height(). Contract violations that the grid can detect cheaply
// panic; the rest surface as index panics or misaligned rows.
package grid

import (
	"fmt"
	"slices"
)

// Grid stores cells of type T in row-major order.
//
// The zero value is an empty grid whose width is not yet fixed. The first
// inserted row (or SetWidthAndHeight) fixes the width for the life of the grid.
type Grid[T comparable] struct {
	cells    []T
	width    int
	hasWidth bool
}

// New returns an empty grid.
func New[T comparable]() *Grid[T] {
	return &Grid[T]{}
}

// NewSized returns a grid of w*h cells set to fill.
func NewSized[T comparable](w, h int, fill T) *Grid[T] {
	g := New[T]()
	g.SetWidthAndHeight(w, h, fill)
	return g
}

// SetWidthAndHeight allocates exactly w*h cells initialised to fill.
// It must be called on a grid whose width is not fixed yet.
func (g *Grid[T]) SetWidthAndHeight(w, h int, fill T) {
	if g.hasWidth {
		panic(fmt.Sprintf("grid: cannot resize to %dx%d, width already fixed at %d", w, h, g.width))
	}
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", w, h))
	}
	g.width = w
	g.hasWidth = true
	g.cells = make([]T, w*h)
	for i := range g.cells {
		g.cells[i] = fill
	}
}

// InsertRow appends row below the last row.
func (g *Grid[T]) InsertRow(row []T) {
	g.fixWidth(len(row))
	g.cells = append(g.cells, row...)
}

// InsertRowFront inserts row above the first row. Existing cells are shifted.
func (g *Grid[T]) InsertRowFront(row []T) {
	g.fixWidth(len(row))
	g.cells = slices.Insert(g.cells, 0, row...)
}

// InsertPaddingRows surrounds the grid with one row of v above and one below.
func (g *Grid[T]) InsertPaddingRows(v T) {
	if !g.hasWidth {
		panic("grid: padding requires a fixed width")
	}
	pad := make([]T, g.width)
	for i := range pad {
		pad[i] = v
	}
	g.InsertRow(pad)
	g.InsertRowFront(pad)
}

func (g *Grid[T]) fixWidth(n int) {
	if !g.hasWidth {
		g.width = n
		g.hasWidth = true
		return
	}
	if n != g.width {
		panic(fmt.Sprintf("grid: row has %d cells, want %d", n, g.width))
	}
}

// At returns the cell at column x, row y.
func (g *Grid[T]) At(x, y int) T { return g.cells[y*g.width+x] }

// AtPoint returns the cell at p.
func (g *Grid[T]) AtPoint(p Point) T { return g.cells[p.Y*g.width+p.X] }

// Set replaces the cell at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) { g.cells[y*g.width+x] = v }

// SetPoint replaces the cell at p.
func (g *Grid[T]) SetPoint(p Point, v T) { g.cells[p.Y*g.width+p.X] = v }

// Width returns the column count, 0 until the width is fixed.
func (g *Grid[T]) Width() int { return g.width }

// HasWidth reports whether the width has been fixed.
func (g *Grid[T]) HasWidth() bool { return g.hasWidth }

// Height returns the row count. A grid without columns has no rows.
func (g *Grid[T]) Height() int {
	if g.width == 0 {
		return 0
	}
	return len(g.cells) / g.width
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.Height()
}

// IsBorder reports whether (x, y) lies on the outermost ring of cells.
func (g *Grid[T]) IsBorder(x, y int) bool {
	h := g.Height()
	if g.width == 0 || h == 0 {
		panic("grid: border test on an empty grid")
	}
	return x == 0 || y == 0 || x == g.width-1 || y == h-1
}

// IsBorderPoint is IsBorder for a Point.
func (g *Grid[T]) IsBorderPoint(p Point) bool { return g.IsBorder(p.X, p.Y) }

// ForEach calls fn for every cell, row by row, left to right.
func (g *Grid[T]) ForEach(fn func(v T, x, y int)) {
	w, h := g.width, g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fn(g.cells[y*w+x], x, y)
		}
	}
}

// Update visits cells in the same order as ForEach and stores fn's result
// back into each cell.
func (g *Grid[T]) Update(fn func(v T, x, y int) T) {
	w, h := g.width, g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			g.cells[idx] = fn(g.cells[idx], x, y)
		}
	}
}

// Cells exposes the row-major backing slice. Callers must not write to it.
func (g *Grid[T]) Cells() []T { return g.cells }

// Row returns row y as a view into the backing slice. Callers must not write
// to it.
func (g *Grid[T]) Row(y int) []T {
	start := y * g.width
	return g.cells[start : start+g.width : start+g.width]
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{cells: slices.Clone(g.cells), width: g.width, hasWidth: g.hasWidth}
}
