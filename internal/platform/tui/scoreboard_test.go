package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreRows(t *testing.T) {
	at := time.Date(2026, time.March, 4, 17, 30, 0, 0, time.Local)
	got := scoreRows([]storage.ScoreEntry{
		{Score: 900, Lines: 8, CreatedAt: at},
		{Score: 40, Lines: 0, CreatedAt: at},
	})

	want := []table.Row{
		{"#1", "900", "8", "Mar 04 17:30"},
		{"#2", "40", "0", "Mar 04 17:30"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scoreRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreboardLoadsScoresAndStats(t *testing.T) {
	store := openStore(t)
	for _, s := range []struct{ score, lines int }{{300, 2}, {1200, 10}, {100, 1}} {
		_, err := store.SaveScore("fake", s.score, s.lines)
		require.NoError(t, err)
	}

	m := NewScoreboardModel("fake", "Tetris", store, 80, 30)
	require.NoError(t, m.loadErr)
	require.Len(t, m.scores, 3)
	assert.Equal(t, 1200, m.scores[0].Score)

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Tetris")
	assert.Contains(t, view, "Games: 3")
	assert.Contains(t, view, "Best: 1200")
	assert.Contains(t, view, "Lines: 13")
}

func TestScoreboardEmptyAndMissingStore(t *testing.T) {
	m := NewScoreboardModel("fake", "Tetris", openStore(t), 80, 30)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	m = NewScoreboardModel("fake", "Tetris", nil, 80, 30)
	assert.Contains(t, m.View(), "Score database unavailable.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel("fake", "Tetris", nil, 80, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, cmd = m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(ScoreboardModel).quitting)
	assert.False(t, next.(ScoreboardModel).IsGoingBack())
}
