package tetris

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// flash blinks the rows removed by the last lock. It keeps the board as it
// looked just before the clear so the removed rows can still be drawn.
type flash struct {
	rows      []int
	board     [][]core.Cell
	remaining int // Frames left
	period    int // Frames per on/off phase
	elapsed   int
}

// start begins a flash; frames <= 0 or no rows leaves it inactive.
func (f *flash) start(rows []int, board [][]core.Cell, frames, period int) {
	f.stop()
	if frames <= 0 || len(rows) == 0 || board == nil {
		return
	}
	f.rows = slices.Clone(rows)
	f.board = board
	f.remaining = frames
	f.period = max(1, period)
}

func (f *flash) stop() {
	f.rows = nil
	f.board = nil
	f.remaining = 0
	f.elapsed = 0
}

func (f *flash) active() bool {
	return f.remaining > 0
}

// step advances one frame.
func (f *flash) step() {
	if !f.active() {
		return
	}
	f.elapsed++
	f.remaining--
	if f.remaining == 0 {
		f.stop()
	}
}

// lit reports whether flashing rows are currently drawn highlighted.
func (f *flash) lit() bool {
	return f.active() && (f.elapsed/f.period)%2 == 0
}

func (f *flash) covers(y int) bool {
	return slices.Contains(f.rows, y)
}
