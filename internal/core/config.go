package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width (characters for text frontends, pixels for windows)
	ScreenH  int   // Screen height
	TickRate int   // Frames per second the frontend redraws at (default 60)
	Seed     int64 // RNG seed for deterministic fruit placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Fruit eaten this run
	GameOver bool // Whether the snake has crashed
}

// StepResult is returned by Game.Update() after each frame.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State GameState

	Ticked    bool // The snake advanced this frame
	Ate       bool // The advance consumed the fruit
	Died      bool // The advance ended the run
	Restarted bool // The run was replaced by a fresh one

	FinalScore int // Score of the run that ended; set together with Died
}
