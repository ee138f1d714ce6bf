package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for sound variants
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a level.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int    // Committed moves
	Complete bool   // Every goal satisfied
	Lost     bool   // A model is in a state that can never satisfy its goal
	Paused   bool   // Whether the game is paused
	Planning bool   // A scripted move sequence is running
	Message  string // Last status message, e.g. "saved"
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Solved is set on the tick the level became complete.
	Solved bool
}

// Game is the contract between a playable level and the platform.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the level identifier used for storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the level from scratch.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
