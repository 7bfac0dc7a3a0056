package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFlag(t *testing.T, p *string, v string) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/logs/tetris.log", filepath.Join(home, "logs", "tetris.log")},
		{"/var/log/tetris.log", "/var/log/tetris.log"},
		{"relative.log", "relative.log"},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tetris.log")
	setFlag(t, &flagLogFile, path)
	setFlag(t, &flagLogLevel, "warn")

	logger, closeLog, err := newLogger()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("visible", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.Contains(t, string(data), "tetris")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	setFlag(t, &flagLogFile, "")
	setFlag(t, &flagLogLevel, "chatty")

	_, _, err := newLogger()
	assert.ErrorContains(t, err, "--log-level")
}

func TestNewGameRejectsBrokenConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	setFlag(t, &flagConfig, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := newGame(log.New(os.Stderr))
	assert.Error(t, err)

	setFlag(t, &flagConfig, "")
	game, err := newGame(log.New(os.Stderr))
	require.NoError(t, err)
	assert.Equal(t, "tetris", game.ID())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for testing.T.Chdir on older Go).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
