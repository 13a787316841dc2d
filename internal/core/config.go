package core

// RuntimeConfig contains settings the platform passes to a game session.
type RuntimeConfig struct {
	ScreenW   int   // Terminal width in characters
	ScreenH   int   // Terminal height in characters
	FrameRate int   // Frames per second the platform drives the session at
	Seed      int64 // RNG seed for lane selection (0 = time-based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0,
	}
}
