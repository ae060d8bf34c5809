package game

import "os"

// DebugState holds diagnostics flags read once at startup
type DebugState struct {
	ShowHUD bool // Draw tick rate, frame rate and star count
	Profile bool // Capture CPU profiles when the tick rate drops
}

// Global debug state instance
var globalDebugState = loadDebugState(os.Getenv)

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// loadDebugState reads STARFIELD_DEBUG and STARFIELD_PROFILE
func loadDebugState(getenv func(string) string) *DebugState {
	return &DebugState{
		ShowHUD: getenv("STARFIELD_DEBUG") == "1",
		Profile: getenv("STARFIELD_PROFILE") == "1",
	}
}
