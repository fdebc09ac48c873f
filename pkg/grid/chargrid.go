package grid

// CharGrid is a byte grid that also accepts rows as text.
//
// Its InsertRow and InsertRowFront take strings; the []byte forms remain
// available through the embedded Grid.
type CharGrid struct {
	Grid[byte]
}

// NewCharGrid returns a CharGrid holding lines, top to bottom.
func NewCharGrid(lines ...string) *CharGrid {
	cg := &CharGrid{}
	for _, line := range lines {
		cg.InsertRow(line)
	}
	return cg
}

// InsertRow appends text as a new bottom row, one cell per byte.
func (cg *CharGrid) InsertRow(text string) { InsertText(&cg.Grid, text) }

// InsertRowFront inserts text as a new top row, one cell per byte.
func (cg *CharGrid) InsertRowFront(text string) { InsertTextFront(&cg.Grid, text) }

// InsertText appends text to g as a row.
func InsertText(g *Grid[byte], text string) { g.InsertRow([]byte(text)) }

// InsertTextFront prepends text to g as a row.
func InsertTextFront(g *Grid[byte], text string) { g.InsertRowFront([]byte(text)) }
