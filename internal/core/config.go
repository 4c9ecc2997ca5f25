package core

// RuntimeConfig contains configuration passed to the game by its host.
// Hosts use this to report surface size and to seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Surface width (terminal cells or window pixels)
	ScreenH  int   // Surface height (terminal cells or window pixels)
	TickRate int   // Host ticks per second (default 60)
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
