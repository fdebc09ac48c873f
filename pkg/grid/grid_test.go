package grid

import (
	"slices"
	"testing"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s did not panic", name)
		}
	}()
	fn()
}

func TestEmptyGrid(t *testing.T) {
	var g Grid[int]
	if g.Width() != 0 || g.Height() != 0 {
		t.Fatalf("empty grid size = %dx%d, want 0x0", g.Width(), g.Height())
	}
	if g.HasWidth() {
		t.Fatal("empty grid must not have a fixed width")
	}
	calls := 0
	g.ForEach(func(int, int, int) { calls++ })
	if calls != 0 {
		t.Fatalf("ForEach on empty grid visited %d cells", calls)
	}
}

func TestInsertRowFixesWidth(t *testing.T) {
	g := New[int]()
	g.InsertRow([]int{1, 2, 3})
	if !g.HasWidth() || g.Width() != 3 {
		t.Fatalf("Width() = %d, want 3", g.Width())
	}

	rows := [][]int{{4, 5, 6}, {7, 8, 9}, {0, 0, 1}}
	for _, row := range rows {
		before := g.Height()
		g.InsertRow(row)
		if g.Height() != before+1 {
			t.Fatalf("Height() = %d after insert, want %d", g.Height(), before+1)
		}
		for x, want := range row {
			if got := g.At(x, g.Height()-1); got != want {
				t.Fatalf("At(%d, %d) = %d, want %d", x, g.Height()-1, got, want)
			}
		}
	}
}

func TestInsertRowMismatchPanics(t *testing.T) {
	g := New[int]()
	g.InsertRow([]int{1, 2, 3})
	mustPanic(t, "InsertRow", func() { g.InsertRow([]int{1, 2}) })
	mustPanic(t, "InsertRowFront", func() { g.InsertRowFront([]int{1, 2, 3, 4}) })
	if g.Height() != 1 {
		t.Fatalf("rejected rows changed height to %d", g.Height())
	}
}

func TestFrontAndBackOrdering(t *testing.T) {
	g := New[int]()
	g.InsertRowFront([]int{1, 2})
	g.InsertRow([]int{3, 4})
	g.InsertRowFront([]int{5, 6})

	want := [][]int{{5, 6}, {1, 2}, {3, 4}}
	if g.Height() != len(want) {
		t.Fatalf("Height() = %d, want %d", g.Height(), len(want))
	}
	for y, row := range want {
		if !slices.Equal(g.Row(y), row) {
			t.Fatalf("Row(%d) = %v, want %v", y, g.Row(y), row)
		}
	}
}

func TestEndToEndPadding(t *testing.T) {
	g := New[int]()
	g.InsertRow([]int{1, 2, 3})
	g.InsertRow([]int{4, 5, 6})

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if g.At(2, 1) != 6 {
		t.Fatalf("At(2, 1) = %d, want 6", g.At(2, 1))
	}

	g.InsertPaddingRows(0)

	want := []int{
		0, 0, 0,
		1, 2, 3,
		4, 5, 6,
		0, 0, 0,
	}
	if g.Height() != 4 {
		t.Fatalf("Height() = %d, want 4", g.Height())
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("Cells() = %v, want %v", g.Cells(), want)
	}
}

func TestPaddingPresizedGrid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"NoRows", 4, 0},
		{"OneRow", 4, 1},
		{"Square", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSized(tt.w, tt.h, '.')
			g.InsertPaddingRows('#')

			if g.Height() != tt.h+2 {
				t.Fatalf("Height() = %d, want %d", g.Height(), tt.h+2)
			}
			for x := 0; x < tt.w; x++ {
				if g.At(x, 0) != '#' || g.At(x, tt.h+1) != '#' {
					t.Fatalf("padding missing at column %d", x)
				}
				for y := 1; y <= tt.h; y++ {
					if g.At(x, y) != '.' {
						t.Fatalf("At(%d, %d) = %q, want '.'", x, y, g.At(x, y))
					}
				}
			}
		})
	}
}

func TestPaddingWithoutWidthPanics(t *testing.T) {
	mustPanic(t, "InsertPaddingRows", func() { New[int]().InsertPaddingRows(0) })
}

func TestSetWidthAndHeight(t *testing.T) {
	g := NewSized(4, 3, 7)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	g.ForEach(func(v, x, y int) {
		if v != 7 {
			t.Fatalf("At(%d, %d) = %d, want 7", x, y, v)
		}
	})

	g.InsertRow([]int{1, 1, 1, 1})
	if g.Height() != 4 {
		t.Fatalf("Height() = %d after insert into presized grid, want 4", g.Height())
	}

	mustPanic(t, "resize after width fixed", func() { g.SetWidthAndHeight(2, 2, 0) })
	mustPanic(t, "negative size", func() { New[int]().SetWidthAndHeight(-1, 2, 0) })

	rows := New[int]()
	rows.InsertRow([]int{1})
	mustPanic(t, "resize after insert", func() { rows.SetWidthAndHeight(1, 1, 0) })
}

func TestZeroWidthGrid(t *testing.T) {
	g := NewSized(0, 5, false)
	if !g.HasWidth() {
		t.Fatal("zero width must still count as fixed")
	}
	if g.Height() != 0 {
		t.Fatalf("Height() = %d, want 0", g.Height())
	}
	g.InsertRow(nil)
	if g.Height() != 0 {
		t.Fatalf("Height() = %d after empty row, want 0", g.Height())
	}
	mustPanic(t, "IsBorder", func() { g.IsBorder(0, 0) })
}

func TestAtAndSet(t *testing.T) {
	g := NewSized(3, 2, 0)
	g.Set(2, 1, 9)
	g.SetPoint(Point{X: 1, Y: 0}, 4)

	if g.At(2, 1) != 9 || g.AtPoint(Point{X: 2, Y: 1}) != 9 {
		t.Fatalf("At(2, 1) = %d, want 9", g.At(2, 1))
	}
	if g.At(1, 0) != 4 {
		t.Fatalf("At(1, 0) = %d, want 4", g.At(1, 0))
	}
	if want := []int{0, 4, 0, 0, 0, 9}; !slices.Equal(g.Cells(), want) {
		t.Fatalf("Cells() = %v, want %v", g.Cells(), want)
	}
}

func TestIsBorder(t *testing.T) {
	sizes := []struct{ w, h int }{{3, 3}, {5, 4}, {8, 10}}
	for _, s := range sizes {
		g := NewSized(s.w, s.h, 0)
		corners := []Point{{0, 0}, {s.w - 1, 0}, {0, s.h - 1}, {s.w - 1, s.h - 1}}
		for _, c := range corners {
			if !g.IsBorderPoint(c) {
				t.Errorf("%dx%d: corner %v not on border", s.w, s.h, c)
			}
		}
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				interior := x > 0 && y > 0 && x < s.w-1 && y < s.h-1
				if g.IsBorder(x, y) == interior {
					t.Errorf("%dx%d: IsBorder(%d, %d) = %v", s.w, s.h, x, y, !interior)
				}
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	g := NewSized(3, 2, 0)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestForEachOrder(t *testing.T) {
	g := NewSized(4, 3, 0)
	var visited []Point
	g.ForEach(func(_ int, x, y int) {
		visited = append(visited, Point{X: x, Y: y})
	})

	if len(visited) != g.Width()*g.Height() {
		t.Fatalf("visited %d cells, want %d", len(visited), g.Width()*g.Height())
	}
	i := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if visited[i] != (Point{X: x, Y: y}) {
				t.Fatalf("visit %d = %v, want (%d,%d)", i, visited[i], x, y)
			}
			i++
		}
	}
}

func TestUpdateMatchesIndexedAssignment(t *testing.T) {
	step := func(v, x, y int) int { return v*3 + x - y }

	a := New[int]()
	a.InsertRow([]int{1, 2, 3, 4})
	a.InsertRow([]int{5, 6, 7, 8})
	a.InsertRow([]int{9, 10, 11, 12})
	b := a.Clone()

	a.Update(step)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			b.Set(x, y, step(b.At(x, y), x, y))
		}
	}

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("Update = %v, indexed = %v", a.Cells(), b.Cells())
	}

	var order []Point
	a.Update(func(v, x, y int) int {
		order = append(order, Point{X: x, Y: y})
		return v
	})
	var forEach []Point
	a.ForEach(func(_ int, x, y int) { forEach = append(forEach, Point{X: x, Y: y}) })
	if !slices.Equal(order, forEach) {
		t.Fatal("Update and ForEach visit cells in different orders")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewSized(2, 2, 1)
	c := g.Clone()
	c.Set(0, 0, 5)
	c.InsertRow([]int{3, 3})

	if g.At(0, 0) != 1 || g.Height() != 2 {
		t.Fatal("mutating the clone changed the original")
	}
	if c.Width() != 2 || c.Height() != 3 {
		t.Fatalf("clone size = %dx%d, want 2x3", c.Width(), c.Height())
	}
}

func TestRowIsCapped(t *testing.T) {
	g := New[int]()
	g.InsertRow([]int{1, 2})
	g.InsertRow([]int{3, 4})

	row := g.Row(0)
	_ = append(row, 99)
	if g.At(0, 1) != 3 {
		t.Fatal("appending to Row(0) overwrote row 1")
	}
}
