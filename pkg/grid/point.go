package grid

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Neighbors8 lists the offsets of the eight surrounding cells.
var Neighbors8 = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
