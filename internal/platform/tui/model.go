package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// Resizer is implemented by games that can adapt to a new terminal size
// without losing progress. Games without it are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// ConfigReporter is implemented by games that load their own config and
// fall back to defaults when it cannot be read.
type ConfigReporter interface {
	ConfigError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables score persistence; a nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(0, cfg.ScreenH-helpHeight)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	if r, ok := game.(ConfigReporter); ok {
		if err := r.ConfigError(); err != nil {
			logger.Warn("game config not loaded, using defaults", "game", game.ID(), "error", err)
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session opened", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.logTransitions(prev, result)

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransitions(prev core.GameState, result core.StepResult) {
	s := result.State
	switch {
	case s.Started && (!prev.Started || prev.GameOver) && !s.GameOver:
		m.logger.Info("game started", "game", m.game.ID())
	case s.GameOver && !prev.GameOver:
		m.logger.Info("game over", "game", m.game.ID(), "score", s.Score, "lines", s.Lines)
	}
	if result.Cleared > 0 {
		m.logger.Debug("lines cleared", "count", result.Cleared, "score", s.Score)
	}
}

func (m Model) saveScore() {
	if m.store == nil {
		return
	}
	if m.gameState.Score <= 0 && m.gameState.Lines <= 0 {
		return
	}
	id, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Lines)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "score", m.gameState.Score, "lines", m.gameState.Lines)
}

// saveScreenshot writes the current frame as plain text under ~/.tetris/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game followed by the help bar.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.backToMenu, nil
}
