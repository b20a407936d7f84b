package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second; 0 means the game's own frame delay
	Seed     int64 // World generation seed; 0 means the configured seed
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// FrameInterval returns the delay between simulation ticks.
// An explicit TickRate wins over the fallback delay.
func (c RuntimeConfig) FrameInterval(fallback time.Duration) time.Duration {
	if c.TickRate > 0 {
		return time.Second / time.Duration(c.TickRate)
	}
	if fallback <= 0 {
		return 80 * time.Millisecond
	}
	return fallback
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
