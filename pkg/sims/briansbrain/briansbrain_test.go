package briansbrain

import (
	"testing"

	"gridkit/internal/core"
)

func TestBorderStaysDead(t *testing.T) {
	b := New(12, 10)
	b.Reset(5)
	for i := 0; i < 10; i++ {
		b.Grid().ForEach(func(v uint8, x, y int) {
			if b.Grid().IsBorder(x, y) && v != stateDead {
				t.Fatalf("tick %d: border cell (%d,%d) = %d", i, x, y, v)
			}
		})
		b.Step()
	}
}

func TestStateCycle(t *testing.T) {
	b := New(6, 6)
	g := b.Grid()
	g.Set(2, 2, stateOn)
	g.Set(3, 2, stateOn)

	b.Step()
	g = b.Grid()
	if g.At(2, 2) != stateDying || g.At(3, 2) != stateDying {
		t.Fatal("firing cells must start dying")
	}
	// Cells directly above and below the pair see exactly two firing neighbours.
	if g.At(2, 1) != stateOn || g.At(3, 3) != stateOn {
		t.Fatalf("expected births above and below the pair:\n%s", g)
	}

	b.Step()
	if b.Grid().At(2, 2) != stateDead {
		t.Fatal("dying cells must die")
	}
}

func TestPaletteCoversStates(t *testing.T) {
	var sim core.Sim = New(4, 4)
	p, ok := sim.(core.PaletteProvider)
	if !ok {
		t.Fatal("Brain must provide a palette")
	}
	if len(p.Palette()) != 3 {
		t.Fatalf("palette has %d colours, want 3", len(p.Palette()))
	}
}
