package starfield

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Default field constants
const (
	StarCount          = 800
	Speed              = 0.1
	StarSpeedFactor    = 0.0675
	StarPositionFactor = 0.0225
	BackgroundOpacity  = 0.4
)

var (
	colorTrail = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorFade  = color.NRGBA{R: 0, G: 0, B: 0, A: uint8(math.Round(BackgroundOpacity * 255))}
)

// ErrInvalidConfig is returned when a Config cannot drive a field
var ErrInvalidConfig = errors.New("invalid starfield config")

// Config holds the field constants
type Config struct {
	// StarCount is the fixed number of stars owned by the field
	StarCount int

	// Speed is passed to every star update on each frame
	Speed float64

	// SpeedFactor scales how fast depth grows per update
	SpeedFactor float64

	// PositionFactor scales the outward step per update
	PositionFactor float64

	// TrailColor is the stroke color for star trails
	TrailColor color.Color

	// FadeColor is painted over the whole surface after every frame
	FadeColor color.Color
}

// DefaultConfig returns the stock starfield configuration
func DefaultConfig() Config {
	return Config{
		StarCount:      StarCount,
		Speed:          Speed,
		SpeedFactor:    StarSpeedFactor,
		PositionFactor: StarPositionFactor,
		TrailColor:     colorTrail,
		FadeColor:      colorFade,
	}
}

// Validate reports whether the config can drive a field
func (c Config) Validate() error {
	if c.StarCount < 0 {
		return fmt.Errorf("%w: star count %d is negative", ErrInvalidConfig, c.StarCount)
	}
	for name, v := range map[string]float64{
		"speed":           c.Speed,
		"speed factor":    c.SpeedFactor,
		"position factor": c.PositionFactor,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, name)
		}
	}
	if c.TrailColor == nil || c.FadeColor == nil {
		return fmt.Errorf("%w: colors must be set", ErrInvalidConfig)
	}
	return nil
}
