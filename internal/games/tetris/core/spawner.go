package core

// Source supplies random integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Spawner deals pieces from the catalog with independent uniform draws
// and keeps one piece queued for preview.
type Spawner struct {
	src    Source
	next   Definition
	queued bool
}

// NewSpawner creates a spawner that draws from src.
func NewSpawner(src Source) *Spawner {
	return &Spawner{src: src}
}

// Reset drops the queued piece.
func (s *Spawner) Reset() {
	s.next = Definition{}
	s.queued = false
}

// draw picks a catalog entry uniformly at random.
func (s *Spawner) draw() Definition {
	return Lookup(Kind(s.src.Intn(KindCount)))
}

// Next returns the queued piece (drawing one if nothing is queued) positioned
// at its spawn point, and queues a fresh draw in its place.
func (s *Spawner) Next() Piece {
	def := s.next
	if !s.queued {
		def = s.draw()
	}
	s.next = s.draw()
	s.queued = true

	at := SpawnPoint(def.Mask)
	return Piece{Kind: def.Kind, Mask: def.Mask, X: at.X, Y: at.Y}
}

// Peek returns a copy of the queued piece.
func (s *Spawner) Peek() (Definition, bool) {
	if !s.queued {
		return Definition{}, false
	}
	return Definition{Kind: s.next.Kind, Mask: s.next.Mask.Clone()}, true
}

// SpawnPoint returns the anchor for a freshly spawned mask:
// centred horizontally (rounding left) on the top row.
func SpawnPoint(m Mask) Point {
	return Point{X: Width/2 - (m.Width()+1)/2, Y: 0}
}
