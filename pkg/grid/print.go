package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Print writes the grid to standard output, one line per row. Cells equal to
// blank are written as a space. Write errors are ignored; use Fprint to see
// them.
func (g *Grid[T]) Print(blank T) {
	_ = g.Fprint(os.Stdout, blank)
}

// Fprint writes the grid to w like Print. Byte cells are written as
// characters, bool cells as '#' or '.', and every other type, int32 and rune
// included, with %v. Use FprintFunc to render runes as characters.
func (g *Grid[T]) Fprint(w io.Writer, blank T) error {
	return g.FprintFunc(w, func(v T) string {
		if v == blank {
			return " "
		}
		return formatCell(v)
	})
}

// FprintFunc writes the grid to w using format for every cell.
func (g *Grid[T]) FprintFunc(w io.Writer, format func(T) string) error {
	bw := bufio.NewWriter(w)
	width, h := g.width, g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < width; x++ {
			bw.WriteString(format(g.cells[y*width+x]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String renders every cell with its natural representation.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	_ = g.FprintFunc(&sb, formatCell[T])
	return sb.String()
}

func formatCell[T comparable](v T) string {
	switch c := any(v).(type) {
	case byte:
		return string(rune(c))
	case bool:
		if c {
			return "#"
		}
		return "."
	default:
		return fmt.Sprint(v)
	}
}
