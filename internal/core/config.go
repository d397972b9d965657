package core

// RuntimeConfig is passed to games at initialization. The logical screen is
// fixed at 320x240, so unlike terminal-native games there are no dimensions
// to negotiate; only the simulation cadence varies per host.
type RuntimeConfig struct {
	TickRate int // Simulation frames per second (default 60)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{TickRate: 60}
}
