package core

// RuntimeConfig contains configuration passed to a session at start.
// The platform fills it from the terminal; Seed keeps gameplay deterministic
// when set explicitly.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Input/render frames per second (default 60)
	Seed    int64 // RNG seed; 0 means derive from current time
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0,
	}
}
