package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size, for deterministic simulation and
// to reach the platform's persistence.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	Player    string        // Save slot owner ("" means the local default slot)
	Saves     SnapshotStore // Checkpoint storage, nil disables save/load
	BestScore int           // Best recorded score for the game, seeds the highscore

	StartLevel int // Level of the first game, 0 uses the configured difficulty
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
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the game asked the platform to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Finished is set on the tick a game session ends (game over, stop or quit)
	// with the final score, so the platform can record it exactly once.
	Finished bool
}
