package tui

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// fakeGame records what the model feeds it and reports a scripted state.
type fakeGame struct {
	resets int
	steps  int
	last   core.InputFrame
	cfg    core.RuntimeConfig
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }

type resizableGame struct {
	fakeGame
	w, h int
}

func (g *resizableGame) Resize(w, h int) { g.w, g.h = w, h }

type misconfiguredGame struct {
	fakeGame
	err error
}

func (g *misconfiguredGame) ConfigError() error { return g.err }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestNewModelReservesHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testRuntime())

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 23, g.cfg.ScreenH)
	assert.Equal(t, int64(7), g.cfg.Seed)
	assert.Equal(t, 23, m.screen.Height())
}

func TestNewModelLogsConfigFallback(t *testing.T) {
	var logs bytes.Buffer
	g := &misconfiguredGame{err: errors.New("bad yaml")}
	NewModel(g, nil, log.New(&logs), testRuntime())

	assert.Contains(t, logs.String(), "using defaults")
	assert.Contains(t, logs.String(), "bad yaml")

	logs.Reset()
	NewModel(&misconfiguredGame{}, nil, log.New(&logs), testRuntime())
	assert.Empty(t, logs.String())
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testRuntime())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey("w"))
	assert.Zero(t, g.steps, "keys are buffered until the next frame")

	m = update(t, m, TickMsg{})
	assert.Equal(t, 1, g.steps)
	assert.True(t, g.last.Has(core.ActionLeft))
	assert.True(t, g.last.Has(core.ActionRotate))

	update(t, m, TickMsg{})
	assert.True(t, g.last.Empty(), "input is cleared after each frame")
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testRuntime())

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Empty(t, next.(Model).View())

	next, cmd = m.Update(runeKey("b"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).backToMenu)
	assert.False(t, next.(Model).quitting)
}

func TestResizeKeepsResizableGame(t *testing.T) {
	g := &resizableGame{}
	m := NewModel(g, nil, nil, testRuntime())

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 1, g.resets, "resize must not restart the game")
	assert.Equal(t, 100, g.w)
	assert.Equal(t, 39, g.h)
	assert.Equal(t, 100, m.screen.Width())
}

func TestResizeResetsPlainGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, testRuntime())

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 2, g.resets)
	assert.Equal(t, 100, g.cfg.ScreenW)
}

func TestScoreSavedOncePerGameOver(t *testing.T) {
	store := openStore(t)
	var logs bytes.Buffer
	logger := log.New(&logs)

	g := &fakeGame{}
	m := NewModel(g, store, logger, testRuntime())

	g.state = core.GameState{Started: true}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Started: true, GameOver: true, Score: 500, Lines: 4}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 4, scores[0].Lines)
	assert.Contains(t, logs.String(), "game over")

	// A restarted game that ends again is saved again.
	g.state = core.GameState{Started: true}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Started: true, GameOver: true, Score: 100, Lines: 1}
	update(t, m, TickMsg{})

	scores, err = store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestEmptyGameIsNotSaved(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{Started: true, GameOver: true}}
	m := NewModel(g, store, nil, testRuntime())

	update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestViewIncludesHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testRuntime())

	view := m.View()
	assert.Contains(t, view, "fake")
	assert.Contains(t, view, "rotate")
}
