// Package core implements the falling-block rules engine: the board, the piece
// catalog, collision, rotation, line clearing and the session state machine.
// It has no platform dependencies so it can be driven by any clock and renderer.
package core

import "slices"

// Board dimensions. They are fixed for every session.
const (
	Width  = 10
	Height = 20
)

// Cell is the content of one board square.
// Empty is the zero value; settled blocks hold Kind.Cell() in 1..KindCount.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// Kind returns the piece kind that produced this cell.
// Reports false for Empty and for values outside the catalog.
func (c Cell) Kind() (Kind, bool) {
	if c == Empty || int(c) > KindCount {
		return 0, false
	}
	return Kind(c - 1), true
}

// Grid is the settled-block matrix, stored row-major as cells[y][x] with y=0 at the top.
type Grid struct {
	cells [][]Cell
}

// NewGrid creates an empty Width x Height grid.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset replaces every row with an empty one.
func (g *Grid) Reset() {
	g.cells = make([][]Cell, Height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, Width)
	}
}

// InBounds returns true if (x, y) lies on the visible board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Get returns the cell at (x, y), or Empty when out of bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// Occupied reports whether (x, y) blocks a piece.
// Columns outside the board and rows at or below the floor are blocked;
// rows above the top (y < 0) are open so pieces may protrude while spawning.
func (g *Grid) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y >= Height {
		return true
	}
	return g.Get(x, y) != Empty
}

// RowFull returns true if every cell in row y is non-empty.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for _, c := range g.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// FullRows scans from the bottom row up and returns the indices of full rows
// in the order they were found.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := Height - 1; y >= 0; y-- {
		if g.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRow deletes row y and inserts an empty row at the top.
// Rows above y move down by one; rows below are untouched.
func (g *Grid) RemoveRow(y int) {
	if y < 0 || y >= Height {
		return
	}
	copy(g.cells[1:y+1], g.cells[0:y])
	g.cells[0] = make([]Cell, Width)
}

// ClearRows removes all listed rows and pads the top with empty rows.
// The result does not depend on the order of rows; duplicates and
// out-of-range indices are ignored.
func (g *Grid) ClearRows(rows []int) int {
	var drop []int
	for _, y := range rows {
		if y >= 0 && y < Height && !slices.Contains(drop, y) {
			drop = append(drop, y)
		}
	}
	// Top-down, so each removal leaves the lower indices in place.
	slices.Sort(drop)
	for _, y := range drop {
		g.RemoveRow(y)
	}
	return len(drop)
}

// Rows returns a deep copy of the board for read-only consumers.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, Height)
	for y := range g.cells {
		rows[y] = make([]Cell, Width)
		copy(rows[y], g.cells[y])
	}
	return rows
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
