package tetris

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Score    int
	Lines    int
	Pieces   int
	Filled   int    // Settled cells on the board
	Active   string // Kind of the falling piece, empty if none
	ActiveX  int
	ActiveY  int
	Next     string
	Flashing bool
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Flashing: g.flash.active(),
		TooSmall: g.tooSmall,
	}
	if g.session == nil {
		return s
	}

	s.Phase = g.session.Phase().String()
	s.Score = g.session.Score()
	s.Lines = g.session.Lines()
	s.Pieces = g.session.Pieces()
	s.Filled = g.session.Filled()
	if p, ok := g.session.Active(); ok {
		s.Active = p.Kind.String()
		s.ActiveX, s.ActiveY = p.X, p.Y
	}
	if def, ok := g.session.Next(); ok {
		s.Next = def.Kind.String()
	}
	return s
}
