package core

import "time"

// RuntimeConfig contains configuration passed from the platform to the
// engine and UI at start-up.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	Seed          int64         // RNG seed; 0 means seed from the clock
	ComputerDelay time.Duration // Pause before the computer moves
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Seed:          0,
		ComputerDelay: 500 * time.Millisecond,
	}
}

// SeedOrNow returns the configured seed, or a clock-based one when unset.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
