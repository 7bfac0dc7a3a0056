// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play a game
//	tetris menu              - Start menu with play and high scores
//	tetris scores            - Show the top scores
//	tetris stats             - Show aggregate statistics
//	tetris list              - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - the falling-block puzzle in your terminal",
	Long: `Tetris is a terminal falling-block puzzle.

Guide the falling pieces, complete horizontal rows to clear them and
keep the stack from reaching the top.

Available commands:
  play     - Play a game (default)
  menu     - Start menu with play and high scores
  scores   - View high scores
  stats    - View aggregate statistics
  list     - Show available games

Examples:
  tetris
  tetris play --seed 42
  tetris scores
  tetris --config ./my-tetris.yaml --log-file ~/.tetris/tetris.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the process logger. The terminal belongs to the game,
// so logs only go to --log-file; without it they are discarded.
// The returned func closes the log file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		path, err := expandPath(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn, nil
}

func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A failure is logged and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newGame validates the game config and creates the game through the
// registry. An explicit --config that cannot be loaded is an error; the
// search-path fallbacks never are.
func newGame(logger *log.Logger) (registry.Game, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("game config loaded", "gravity_ms", cfg.Timing.GravityIntervalMs, "cell_width", cfg.Display.CellWidth)

	tetris.SetConfigPath(flagConfig)
	game, err := registry.Create(tetris.ID)
	if err != nil {
		return nil, fmt.Errorf("cannot create game: %w", err)
	}
	return game, nil
}
