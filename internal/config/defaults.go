package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: one gravity step
// per second and three white flashes of 100ms each way at 60 fps.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			GravityIntervalMs: 1000,
			FlashFrames:       36,
			FlashPeriod:       6,
		},
		Display: TetrisDisplay{
			CellWidth: 2,
			ShowNext:  true,
			Colors: map[string]string{
				"I": "bright_red",
				"O": "bright_cyan",
				"T": "bright_green",
				"L": "bright_magenta",
				"J": "orange",
				"S": "bright_yellow",
				"Z": "bright_blue",
			},
		},
	}
}
