package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Events are short human-readable notices produced this tick
	// ("no moves left", "settle limit reached"). The platform may log them.
	Events []string
}

// PlayStats summarizes a finished play for persistence.
type PlayStats struct {
	Seed       int64 // Seed the play started from
	Moves      int   // Accepted moves
	BestChain  int   // Longest cascade of clearing passes
	Level      int   // Level reached (1-indexed), 0 when the game has no levels
	StartLevel int   // Level the play started on, 0 when the game has no levels
}
