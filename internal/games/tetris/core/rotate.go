package core

// KickOffsets are tried in order when a rotated piece does not fit in place.
var KickOffsets = [...]Point{
	{X: 0, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// RotateCW returns the mask turned 90 degrees clockwise:
// the transpose with each resulting row reversed.
// Four rotations yield the original mask.
func (m Mask) RotateCW() Mask {
	h, w := m.Height(), m.Width()
	r := make(Mask, w)
	for ry := 0; ry < w; ry++ {
		r[ry] = make([]bool, h)
		for rx := 0; rx < h; rx++ {
			r[ry][rx] = m[h-1-rx][ry]
		}
	}
	return r
}

// Rotate turns p clockwise and places it at the first kick offset that fits.
// On failure it returns p unchanged and false.
func Rotate(g *Grid, p Piece) (Piece, bool) {
	candidate := p.Mask.RotateCW()
	for _, off := range KickOffsets {
		at := p.Anchor().Add(off)
		if CanPlace(g, candidate, at) {
			return Piece{Kind: p.Kind, Mask: candidate, X: at.X, Y: at.Y}, true
		}
	}
	return p, false
}
