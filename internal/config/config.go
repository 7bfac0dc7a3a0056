// Package config loads the YAML game configuration for tetris.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// pieceLetters are the valid keys of Display.Colors.
const pieceLetters = "IOTLJSZ"

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisTiming controls gravity and the line-clear flash.
type TetrisTiming struct {
	GravityIntervalMs int `yaml:"gravity_interval_ms"`
	FlashFrames       int `yaml:"flash_frames"` // 0 disables the flash
	FlashPeriod       int `yaml:"flash_period"` // Frames per on/off phase
}

// TetrisDisplay controls how the board is drawn.
type TetrisDisplay struct {
	CellWidth int               `yaml:"cell_width"` // Terminal columns per board cell
	ShowNext  bool              `yaml:"show_next"`
	Colors    map[string]string `yaml:"colors"` // Piece letter -> color name
}

// Validate reports every invalid field at once.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Timing.GravityIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_interval_ms must be positive, got %d", c.Timing.GravityIntervalMs))
	}
	if c.Timing.FlashFrames < 0 {
		errs = append(errs, fmt.Errorf("timing.flash_frames must not be negative, got %d", c.Timing.FlashFrames))
	}
	if c.Timing.FlashFrames > 0 && c.Timing.FlashPeriod <= 0 {
		errs = append(errs, fmt.Errorf("timing.flash_period must be positive when flashing, got %d", c.Timing.FlashPeriod))
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 3 {
		errs = append(errs, fmt.Errorf("display.cell_width must be 1..3, got %d", c.Display.CellWidth))
	}

	// Sorted for stable error output.
	keys := make([]string, 0, len(c.Display.Colors))
	for k := range c.Display.Colors {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if len(k) != 1 || !strings.Contains(pieceLetters, k) {
			errs = append(errs, fmt.Errorf("display.colors: unknown piece %q", k))
			continue
		}
		if _, ok := core.ParseColor(c.Display.Colors[k]); !ok {
			errs = append(errs, fmt.Errorf("display.colors.%s: unknown color %q", k, c.Display.Colors[k]))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}

// GravityTicks converts the gravity interval into platform frames at the
// given tick rate. Never less than one frame.
func (c TetrisConfig) GravityTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Duration(c.Timing.GravityIntervalMs) * time.Millisecond
	frame := time.Second / time.Duration(tickRate)
	return max(1, int((interval+frame/2)/frame))
}

// PieceColor returns the configured color for a piece letter.
func (c TetrisConfig) PieceColor(letter string) (core.Color, bool) {
	name, ok := c.Display.Colors[letter]
	if !ok {
		return core.ColorDefault, false
	}
	return core.ParseColor(name)
}
