package core

import "strings"

// Point is a board coordinate or an offset between coordinates.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mask is a piece footprint: mask[ly][lx] is true where the piece has a block.
type Mask [][]bool

// ParseMask builds a mask from rows of text where '#' marks a block.
func ParseMask(rows ...string) Mask {
	m := make(Mask, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, ch := range row {
			m[y][x] = ch == '#'
		}
	}
	return m
}

// Width returns the length of the first row (0 for an empty mask).
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Mask) Height() int {
	return len(m)
}

// Clone returns a deep copy.
func (m Mask) Clone() Mask {
	c := make(Mask, len(m))
	for y := range m {
		c[y] = make([]bool, len(m[y]))
		copy(c[y], m[y])
	}
	return c
}

// Cells returns the local coordinates of every block, row by row.
func (m Mask) Cells() []Point {
	var cells []Point
	for y, row := range m {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// String renders the mask with '#' for blocks and '.' for gaps.
func (m Mask) String() string {
	var b strings.Builder
	for y, row := range m {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Piece is the falling piece. Its mask may differ from the catalog after rotation;
// its kind never changes.
type Piece struct {
	Kind Kind
	Mask Mask
	X, Y int // Anchor: board position of the mask's local origin
}

// Anchor returns the piece position as a Point.
func (p Piece) Anchor() Point {
	return Point{X: p.X, Y: p.Y}
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Mask = p.Mask.Clone()
	return p
}

// Blocks returns the absolute board coordinates of every block.
func (p Piece) Blocks() []Point {
	cells := p.Mask.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.Anchor())
	}
	return cells
}
