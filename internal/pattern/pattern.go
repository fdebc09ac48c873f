// Package pattern reads plain-text cell patterns into grids.
//
// A pattern file holds one row per line. Blank lines and lines starting with
// '!' are ignored, so files in the common "plaintext" Life format load as is.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gridkit/pkg/grid"
)

// ErrRaggedRow is returned when a row's length differs from the first row's.
var ErrRaggedRow = errors.New("pattern: row length differs from first row")

// ErrEmpty is returned when the input holds no rows.
var ErrEmpty = errors.New("pattern: no rows")

// Load reads a pattern from r.
func Load(r io.Reader) (*grid.CharGrid, error) {
	cg := &grid.CharGrid{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "!") {
			continue
		}
		if cg.HasWidth() && len(text) != cg.Width() {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", line, len(text), cg.Width(), ErrRaggedRow)
		}
		cg.InsertRow(text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pattern: read: %w", err)
	}
	if cg.Height() == 0 {
		return nil, ErrEmpty
	}
	return cg, nil
}

// LoadFile reads a pattern from the named file.
func LoadFile(path string) (*grid.CharGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	defer f.Close()

	cg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cg, nil
}

// ToCells converts a character pattern into a 0/1 grid. Characters in alive
// become 1.
func ToCells(cg *grid.CharGrid, alive string) *grid.Grid[uint8] {
	out := grid.NewSized[uint8](cg.Width(), cg.Height(), 0)
	cg.ForEach(func(c byte, x, y int) {
		if strings.IndexByte(alive, c) >= 0 {
			out.Set(x, y, 1)
		}
	})
	return out
}

// Stamp copies src into dst with src's top-left corner at at. Cells falling
// outside dst are dropped.
func Stamp(dst, src *grid.Grid[uint8], at grid.Point) {
	src.ForEach(func(v uint8, x, y int) {
		p := at.Add(grid.Point{X: x, Y: y})
		if dst.InBounds(p.X, p.Y) {
			dst.SetPoint(p, v)
		}
	})
}

// Centre returns the offset that places src in the middle of dst.
func Centre(dst, src *grid.Grid[uint8]) grid.Point {
	return grid.Point{
		X: (dst.Width() - src.Width()) / 2,
		Y: (dst.Height() - src.Height()) / 2,
	}
}
