package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	blockRune  = '█'
	emptyRune  = '·'
	panelGap   = 2
	panelWidth = 16
)

// defaultColors is used for pieces the config leaves uncolored.
var defaultColors = [core.KindCount]platformcore.Color{
	core.KindI: platformcore.ColorBrightRed,
	core.KindO: platformcore.ColorBrightCyan,
	core.KindT: platformcore.ColorBrightGreen,
	core.KindL: platformcore.ColorBrightMagenta,
	core.KindJ: platformcore.ColorOrange,
	core.KindS: platformcore.ColorBrightYellow,
	core.KindZ: platformcore.ColorBrightBlue,
}

const (
	flashColor  = platformcore.ColorBrightWhite
	borderColor = platformcore.ColorGray
	labelColor  = platformcore.ColorWhite
)

// layout places the board box and the side panel on the screen.
type layout struct {
	fits  bool
	cellW int
	minW  int
	minH  int
	board platformcore.Rect // Including the border
	panel platformcore.Rect
}

func computeLayout(d config.TetrisDisplay, w, h int) layout {
	cw := max(1, d.CellWidth)
	boardW := core.Width*cw + 2
	boardH := core.Height + 2
	pw := max(panelWidth, 4*cw+2)

	l := layout{
		cellW: cw,
		minW:  boardW + panelGap + pw,
		minH:  boardH,
	}
	if w < l.minW || h < l.minH {
		return l
	}

	l.fits = true
	area := platformcore.NewRect(0, 0, w, h).Centered(l.minW, l.minH)
	l.board = platformcore.NewRect(area.X, area.Y, boardW, boardH)
	l.panel = platformcore.NewRect(l.board.Right()+panelGap, area.Y, pw, boardH)
	return l
}

// Render draws the board, side panel and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	dst.DrawBoxColor(g.layout.board, borderColor)
	g.renderBoard(dst)
	g.renderPanel(dst)

	switch g.session.Phase() {
	case core.PhaseNotStarted:
		g.renderOverlay(dst, "T E T R I S", "Press Enter to start")
	case core.PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case core.PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", g.session.Score()), "Press R to restart")
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	rows := g.session.Grid()
	if g.flash.active() {
		rows = g.flash.board
	}

	for y, row := range rows {
		highlight := g.flash.covers(y) && g.flash.lit()
		for x, c := range row {
			switch k, ok := c.Kind(); {
			case highlight:
				g.drawCell(dst, x, y, flashColor)
			case ok:
				g.drawCell(dst, x, y, g.colors[k])
			default:
				g.drawEmpty(dst, x, y)
			}
		}
	}

	// The next piece has already spawned when a flash starts; keep it
	// hidden until the cleared rows are gone.
	if g.flash.active() {
		return
	}
	if p, ok := g.session.Active(); ok {
		for _, b := range p.Blocks() {
			if b.Y >= 0 {
				g.drawCell(dst, b.X, b.Y, g.colors[p.Kind])
			}
		}
	}
}

// drawCell paints board cell (x, y) as a solid block.
func (g *Game) drawCell(dst *platformcore.Screen, x, y int, c platformcore.Color) {
	inner := g.layout.board.Inner()
	cw := g.layout.cellW
	for i := 0; i < cw; i++ {
		dst.SetColor(inner.X+x*cw+i, inner.Y+y, blockRune, c)
	}
}

func (g *Game) drawEmpty(dst *platformcore.Screen, x, y int) {
	inner := g.layout.board.Inner()
	cw := g.layout.cellW
	dst.SetColor(inner.X+x*cw+(cw-1)/2, inner.Y+y, emptyRune, borderColor)
}

func (g *Game) renderPanel(dst *platformcore.Screen) {
	p := g.layout.panel
	y := p.Y

	if g.cfg.Display.ShowNext {
		dst.DrawTextColor(p.X, y, "NEXT", labelColor)
		box := platformcore.NewRect(p.X, y+1, 4*g.layout.cellW+2, 4)
		dst.DrawBoxColor(box, borderColor)
		if def, ok := g.session.Next(); ok {
			g.renderPreview(dst, box.Inner(), def)
		}
		y = box.Bottom() + 1
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.session.Score()},
		{"LINES", g.session.Lines()},
		{"PIECES", g.session.Pieces()},
	}
	for _, s := range stats {
		dst.DrawTextColor(p.X, y, s.label, labelColor)
		dst.DrawText(p.X, y+1, strconv.Itoa(s.value))
		y += 3
	}

	controls := []string{
		"←/→   move",
		"↑     rotate",
		"↓     drop",
		"P     pause",
		"Q     quit",
	}
	cy := p.Bottom() - len(controls)
	if cy-1 > y {
		dst.DrawHLine(p.X, cy-1, min(p.W, 12), '─')
	}
	for i, line := range controls {
		if cy+i > y {
			dst.DrawTextColor(p.X, cy+i, line, borderColor)
		}
	}
}

// renderPreview centers the queued piece inside area.
func (g *Game) renderPreview(dst *platformcore.Screen, area platformcore.Rect, def core.Definition) {
	cw := g.layout.cellW
	m := def.Mask
	ox := area.X + (area.W-m.Width()*cw)/2
	oy := area.Y + (area.H-m.Height())/2
	for _, b := range m.Cells() {
		for i := 0; i < cw; i++ {
			dst.SetColor(ox+b.X*cw+i, oy+b.Y, blockRune, g.colors[def.Kind])
		}
	}
}

// renderOverlay draws a framed message box over the board.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := g.layout.board.Centered(width+4, len(lines)*2+1)

	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBoxColor(box, labelColor)
	for i, l := range lines {
		c := platformcore.ColorDefault
		if i == 0 {
			c = platformcore.ColorBrightYellow
		}
		dst.DrawTextCenteredIn(box, box.Y+1+i*2, l, c)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	mid := g.screenH / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d, have %dx%d",
		g.layout.minW, g.layout.minH, g.screenW, g.screenH))
}
