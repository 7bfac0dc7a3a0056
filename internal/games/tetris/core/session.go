package core

// TickResult describes the outcome of one gravity step.
type TickResult struct {
	Moved    bool       // Piece fell one row
	Locked   bool       // Piece could not fall and was merged into the grid
	Lock     LockResult // Valid when Locked
	GameOver bool       // The piece locked above the top or the next one could not spawn
}

// Session owns one game: grid, falling piece, spawner, score and phase.
// Every operation either applies fully or leaves the session unchanged.
// A Session is not safe for concurrent use.
type Session struct {
	grid    *Grid
	spawner *Spawner
	active  Piece
	alive   bool // active holds a legally placed piece
	score   int
	lines   int
	pieces  int
	phase   Phase
}

// NewSession creates a session in PhaseNotStarted that draws pieces from src.
func NewSession(src Source) *Session {
	return &Session{
		grid:    NewGrid(),
		spawner: NewSpawner(src),
		phase:   PhaseNotStarted,
	}
}

// NewGame clears the board and score, deals the current and next pieces and
// enters PhaseRunning. It is legal from any phase.
func (s *Session) NewGame() {
	s.grid.Reset()
	s.spawner.Reset()
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.phase = PhaseRunning
	if !s.spawnNext() {
		s.phase = PhaseGameOver
	}
}

// spawnNext installs the next piece at its spawn point.
// Returns false if the piece overlaps the board there.
func (s *Session) spawnNext() bool {
	s.active = s.spawner.Next()
	s.alive = Fits(s.grid, s.active)
	return s.alive
}

// Tick advances gravity by one row, or locks the piece, clears lines,
// scores and spawns the next piece when it cannot fall. A piece that locks
// with blocks above the top row ends the game.
// No-op outside PhaseRunning.
func (s *Session) Tick() TickResult {
	if s.phase != PhaseRunning {
		return TickResult{}
	}

	if s.tryMove(0, 1) {
		return TickResult{Moved: true}
	}

	res := TickResult{Locked: true}
	res.Lock = Lock(s.grid, s.active)
	s.alive = false
	s.score += res.Lock.Delta
	s.lines += res.Lock.Lines
	s.pieces++

	if res.Lock.Overflow {
		s.phase = PhaseGameOver
		res.GameOver = true
		return res
	}
	if !s.spawnNext() {
		s.phase = PhaseGameOver
		res.GameOver = true
	}
	return res
}

// tryMove shifts the piece by (dx, dy) if the new position fits.
func (s *Session) tryMove(dx, dy int) bool {
	at := s.active.Anchor().Add(Point{X: dx, Y: dy})
	if !CanPlace(s.grid, s.active.Mask, at) {
		return false
	}
	s.active.X, s.active.Y = at.X, at.Y
	return true
}

// canAct reports whether piece commands are accepted.
func (s *Session) canAct() bool {
	return s.phase == PhaseRunning && s.alive
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() bool {
	return s.canAct() && s.tryMove(-1, 0)
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() bool {
	return s.canAct() && s.tryMove(1, 0)
}

// SoftDrop moves the piece one row down without locking it.
func (s *Session) SoftDrop() bool {
	return s.canAct() && s.tryMove(0, 1)
}

// RotateCW turns the piece clockwise, trying each kick offset in order.
func (s *Session) RotateCW() bool {
	if !s.canAct() {
		return false
	}
	rotated, ok := Rotate(s.grid, s.active)
	if ok {
		s.active = rotated
	}
	return ok
}

// Pause moves a running session to PhasePaused.
func (s *Session) Pause() bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.phase = PhasePaused
	return true
}

// Resume moves a paused session back to PhaseRunning.
func (s *Session) Resume() bool {
	if s.phase != PhasePaused {
		return false
	}
	s.phase = PhaseRunning
	return true
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() bool {
	if s.phase == PhasePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Grid returns a copy of the settled blocks.
func (s *Session) Grid() [][]Cell {
	return s.grid.Rows()
}

// Active returns a copy of the falling piece.
// Reports false before the first game and once the game is over.
func (s *Session) Active() (Piece, bool) {
	return s.active.Clone(), s.alive
}

// Next returns the queued piece shown in the preview.
func (s *Session) Next() (Definition, bool) {
	return s.spawner.Peek()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the number of rows cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// Pieces returns the number of pieces locked this game.
func (s *Session) Pieces() int {
	return s.pieces
}

// Filled returns the number of settled cells on the board.
func (s *Session) Filled() int {
	return s.grid.FilledCount()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}
