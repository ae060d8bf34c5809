package game

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies the window and field defaults
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.ScreenWidth != 1024 || config.ScreenHeight != 768 {
		t.Errorf("Expected 1024x768 window, got %dx%d", config.ScreenWidth, config.ScreenHeight)
	}
	if config.Field.StarCount != 800 {
		t.Errorf("Expected 800 stars, got %d", config.Field.StarCount)
	}
	if err := config.Field.Validate(); err != nil {
		t.Errorf("Expected valid field config, got %v", err)
	}
}

// TestLoadDebugState verifies the environment toggles
func TestLoadDebugState(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		hud     bool
		profile bool
	}{
		{name: "Unset", env: map[string]string{}},
		{name: "HUD", env: map[string]string{"STARFIELD_DEBUG": "1"}, hud: true},
		{name: "Profile", env: map[string]string{"STARFIELD_PROFILE": "1"}, profile: true},
		{name: "Not one", env: map[string]string{"STARFIELD_DEBUG": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := loadDebugState(func(key string) string { return tt.env[key] })
			if state.ShowHUD != tt.hud || state.Profile != tt.profile {
				t.Errorf("Expected hud=%v profile=%v, got hud=%v profile=%v", tt.hud, tt.profile, state.ShowHUD, state.Profile)
			}
		})
	}
}

// TestCanvasTransformOrder checks that later transforms apply to points first
func TestCanvasTransformOrder(t *testing.T) {
	c := NewCanvas()
	c.Scale(2, 2)
	c.Translate(50, 25)

	x, y := c.geoM.Apply(-50, -25)
	if x != 0 || y != 0 {
		t.Errorf("Expected top-left corner at (0, 0), got (%v, %v)", x, y)
	}
	x, y = c.geoM.Apply(10, 5)
	if x != 120 || y != 60 {
		t.Errorf("Expected (120, 60), got (%v, %v)", x, y)
	}
	if s := c.transformScale(); math.Abs(s-2) > 1e-9 {
		t.Errorf("Expected transform scale 2, got %v", s)
	}
}

// TestCanvasPath verifies subpaths are built and cleared
func TestCanvasPath(t *testing.T) {
	c := NewCanvas()
	c.BeginPath()
	c.MoveTo(1, 2)
	c.LineTo(3, 4)
	c.MoveTo(5, 6)
	c.LineTo(7, 8)

	if len(c.path) != 2 || len(c.path[0]) != 2 || len(c.path[1]) != 2 {
		t.Fatalf("Expected two 2-point subpaths, got %v", c.path)
	}

	c.BeginPath()
	if len(c.path) != 0 {
		t.Errorf("Expected empty path, got %v", c.path)
	}
}

// TestProfilerCooldown verifies a second capture is refused while one is recent
func TestProfilerCooldown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p := NewProfiler(dir)
	p.captureDuration = 10 * time.Millisecond

	if err := p.CaptureProfile("test"); err != nil {
		t.Fatalf("Expected first capture to start, got %v", err)
	}
	if err := p.CaptureProfile("test"); err == nil {
		t.Error("Expected second capture to be refused")
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if p.IsProfiling() {
		t.Fatal("Expected capture to finish")
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.cpu.prof"))
	if err != nil || len(matches) != 1 {
		t.Errorf("Expected one CPU profile, got %v (%v)", matches, err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected profiles dir to exist, got %v", err)
	}
}
