package game

import (
	"time"

	"starfield/starfield"
)

// Config holds window and diagnostics settings for the ebiten host
type Config struct {
	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// Field holds the starfield constants
	Field starfield.Config

	// ProfileTPSThreshold is the tick rate below which a CPU profile is captured
	ProfileTPSThreshold float64

	// ProfileGracePeriod ignores slow ticks right after launch
	ProfileGracePeriod time.Duration

	// ProfilesDir is where captured profiles are written
	ProfilesDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         1024,
		ScreenHeight:        768,
		Title:               "Starfield",
		Field:               starfield.DefaultConfig(),
		ProfileTPSThreshold: 45.0,
		ProfileGracePeriod:  3 * time.Second,
		ProfilesDir:         "profiles",
	}
}
