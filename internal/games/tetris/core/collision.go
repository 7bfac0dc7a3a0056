package core

// CanPlace reports whether mask m anchored at `at` fits on the grid.
// A block fails if its column is off the board, its row is at or below the floor,
// or it lands on a settled cell. Blocks above the top row never collide.
// CanPlace only reads its arguments.
func CanPlace(g *Grid, m Mask, at Point) bool {
	for ly, row := range m {
		for lx, filled := range row {
			if !filled {
				continue
			}
			x, y := at.X+lx, at.Y+ly
			if x < 0 || x >= Width || y >= Height {
				return false
			}
			if y >= 0 && g.Occupied(x, y) {
				return false
			}
		}
	}
	return true
}

// Fits reports whether p can occupy its current position.
func Fits(g *Grid, p Piece) bool {
	return CanPlace(g, p.Mask, p.Anchor())
}
