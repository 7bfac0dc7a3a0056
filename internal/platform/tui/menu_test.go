package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out, cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("fake", "Tetris", nil, testRuntime())
	assert.Contains(t, m.View(), "T E T R I S")
	assert.Contains(t, m.View(), "> Play")

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stops at the top")

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, MenuScores, m.Chosen())
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel("fake", "Tetris", nil, testRuntime())
	for i := 0; i < 5; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.cursor, "cursor stops at the bottom")

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, MenuQuit, m.Chosen())
	assert.Empty(t, m.View())

	m = NewMenuModel("fake", "Tetris", nil, testRuntime())
	m, _ = menuUpdate(t, m, runeKey("q"))
	assert.Equal(t, MenuQuit, m.Chosen())
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore("fake", 1200, 9)
	require.NoError(t, err)

	m := NewMenuModel("fake", "Tetris", store, testRuntime())
	assert.Contains(t, m.View(), "Best: 1200")
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel("fake", "Tetris", nil, testRuntime())
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 50, m.Config().ScreenH)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 4))
}
