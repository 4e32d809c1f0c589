package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Front-end width (cells for the terminal, pixels for the window)
	ScreenH  int   // Front-end height
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

// Ticks converts a duration in seconds into simulation ticks.
func (c RuntimeConfig) Ticks(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int(seconds*float64(rate) + 0.5)
}

// GameState is a compact summary of a session, returned after every tick.
type GameState struct {
	Score   int  // Current score
	Lives   int  // Lives remaining
	Level   int  // Current level (1-based)
	Running bool // Whether the per-frame tick is active
	Over    bool // Game over or campaign won
}
