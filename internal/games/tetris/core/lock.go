package core

// Points awarded per lock, indexed by min(lines cleared, 4).
const lineBase = 100

var lineMultipliers = [...]int{0, 1, 3, 5, 8}

// ScoreFor returns the score delta for clearing n lines in one lock.
func ScoreFor(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(lineMultipliers) {
		n = len(lineMultipliers) - 1
	}
	return lineBase * lineMultipliers[n]
}

// LockResult describes what a lock did to the grid.
type LockResult struct {
	Rows     []int    // Cleared row indices, bottom-up as detected
	Lines    int      // len(Rows)
	Delta    int      // Score gained
	Board    [][]Cell // Grid after freezing, before clearing; nil when nothing cleared
	Overflow bool     // Part of the piece came to rest above the top row
}

// Freeze writes the piece's blocks into the grid and reports whether all
// of them landed on the board. Blocks above the top row are not written.
func Freeze(g *Grid, p Piece) bool {
	v := p.Kind.Cell()
	inside := true
	for _, b := range p.Blocks() {
		if b.Y < 0 {
			inside = false
			continue
		}
		g.Set(b.X, b.Y, v)
	}
	return inside
}

// Lock freezes p, removes every full row and scores the result.
// Rows are still cleared and scored when the piece overflows.
func Lock(g *Grid, p Piece) LockResult {
	inside := Freeze(g, p)

	rows := g.FullRows()
	res := LockResult{
		Rows:     rows,
		Lines:    len(rows),
		Delta:    ScoreFor(len(rows)),
		Overflow: !inside,
	}
	if res.Lines > 0 {
		res.Board = g.Rows()
		g.ClearRows(rows)
	}
	return res
}
