package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Lines    int
	GameOver bool
	Paused   bool
	Started  bool // A game has been started since the last Reset
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State   GameState
	Cleared int // Rows cleared during this frame
}
