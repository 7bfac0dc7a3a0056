// Package tetris adapts the falling-block engine in tetris/core to the
// platform: it maps actions to engine commands, paces gravity in frames
// and draws the board, preview and HUD.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry and scores-table identifier.
const ID = "tetris"

// Game implements registry.Game on top of a core.Session.
type Game struct {
	cfg     config.TetrisConfig
	cfgErr  error
	session *core.Session
	rng     *rand.Rand
	flash   flash

	tick         uint64
	gravityTicks int // Frames between gravity steps
	gravityTimer int

	screenW  int
	screenH  int
	tooSmall bool
	layout   layout
	colors   [core.KindCount]platformcore.Color
}

// Package-level configuration, set by the command layer before Create.
var (
	configPath string
)

// SetConfigPath sets a custom YAML config path. Empty means search the
// default locations.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// New creates a game with the built-in configuration. Reset loads the
// configured one.
func New() *Game {
	g := &Game{}
	g.applyConfig(config.DefaultTetrisConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when loading fails.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Reset loads the configuration and shows the start screen.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	loaded, err := config.LoadTetris(configPath)
	if err != nil {
		loaded = config.DefaultTetrisConfig()
	}
	g.cfgErr = err
	g.applyConfig(loaded)
	g.resetWith(cfg)
}

// resetWith rebuilds runtime state for an already applied config.
func (g *Game) resetWith(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.NewSession(g.rng)
	g.flash.stop()
	g.tick = 0
	g.gravityTicks = g.cfg.GravityTicks(cfg.TickRate)
	g.gravityTimer = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// applyConfig installs cfg and resolves piece colors.
func (g *Game) applyConfig(cfg config.TetrisConfig) {
	g.cfg = cfg
	for _, def := range core.Catalog() {
		c, ok := cfg.PieceColor(def.Kind.String())
		if !ok {
			c = defaultColors[def.Kind]
		}
		g.colors[def.Kind] = c
	}
}

// Resize recomputes the layout without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(g.cfg.Display, w, h)
	g.tooSmall = !g.layout.fits
}

// Step advances one platform frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.session == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	switch g.session.Phase() {
	case core.PhaseNotStarted, core.PhaseGameOver:
		g.flash.stop()
		if in.Has(platformcore.ActionConfirm) || in.Has(platformcore.ActionRestart) {
			g.newGame()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.session.TogglePause()
		return platformcore.StepResult{State: g.State()}
	}
	if g.session.Phase() == core.PhasePaused {
		return platformcore.StepResult{State: g.State()}
	}

	// The flash holds both gravity and piece input.
	if g.flash.active() {
		g.flash.step()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)

	var cleared int
	g.gravityTimer++
	if g.gravityTimer >= g.gravityTicks {
		g.gravityTimer = 0
		res := g.session.Tick()
		if res.Locked && res.Lock.Lines > 0 {
			cleared = res.Lock.Lines
		}
		// A lock that ends the game shows the final board, not a flash.
		if cleared > 0 && !res.GameOver {
			g.flash.start(res.Lock.Rows, res.Lock.Board, g.cfg.Timing.FlashFrames, g.cfg.Timing.FlashPeriod)
		}
	}

	return platformcore.StepResult{State: g.State(), Cleared: cleared}
}

// handleInput applies piece commands. Each is independent, so a frame
// holding Left and Rotate does both.
func (g *Game) handleInput(in platformcore.InputFrame) {
	if in.Empty() {
		return
	}
	if in.Has(platformcore.ActionLeft) {
		g.session.MoveLeft()
	}
	if in.Has(platformcore.ActionRight) {
		g.session.MoveRight()
	}
	if in.Has(platformcore.ActionRotate) {
		g.session.RotateCW()
	}
	if in.Has(platformcore.ActionDown) {
		g.session.SoftDrop()
	}
}

func (g *Game) newGame() {
	g.session.NewGame()
	g.flash.stop()
	g.gravityTimer = 0
}

// State reports score and lifecycle flags to the platform.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	phase := g.session.Phase()
	return platformcore.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Lines(),
		GameOver: phase == core.PhaseGameOver,
		Paused:   phase == core.PhasePaused,
		Started:  phase != core.PhaseNotStarted,
	}
}
