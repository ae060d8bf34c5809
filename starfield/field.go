package starfield

import (
	"errors"
	"fmt"
	"math"
)

// Construction errors
var (
	ErrNoSurface   = errors.New("drawing surface is missing")
	ErrNoContainer = errors.New("sizing container is missing")
	ErrNoScheduler = errors.New("frame scheduler is missing")
)

// Field owns the stars, sizes the surface and drives the animation loop
type Field struct {
	config    Config
	stars     []Star
	surface   Surface
	container Container
	scheduler Scheduler

	// frameID is the last requested frame; it may already have run
	frameID FrameID
	pending bool

	width, height float64
}

// New creates a field, subscribes it to container size changes and runs the
// initial setup
func New(config Config, surface Surface, container Container, scheduler Scheduler) (*Field, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create starfield: %w", err)
	}
	if surface == nil {
		return nil, fmt.Errorf("failed to create starfield: %w", ErrNoSurface)
	}
	if container == nil {
		return nil, fmt.Errorf("failed to create starfield: %w", ErrNoContainer)
	}
	if scheduler == nil {
		return nil, fmt.Errorf("failed to create starfield: %w", ErrNoScheduler)
	}

	f := &Field{
		config:    config,
		stars:     make([]Star, config.StarCount),
		surface:   surface,
		container: container,
		scheduler: scheduler,
	}
	for i := range f.stars {
		f.stars[i] = NewStar(0, 0, 0)
	}

	container.Observe(f.Setup)
	f.Setup()

	return f, nil
}

// Setup reconfigures the surface for the current container size, scatters
// every star and restarts the frame loop
func (f *Field) Setup() {
	if f.frameID != 0 {
		f.scheduler.CancelFrame(f.frameID)
		f.pending = false
	}

	width, height := f.container.Size()
	f.width, f.height = width, height

	ratio := pixelRatio(f.container)
	f.surface.Resize(
		int(math.Floor(width*ratio)),
		int(math.Floor(height*ratio)),
		width,
		height,
	)
	f.surface.Scale(ratio, ratio)

	for i := range f.stars {
		f.stars[i].Reset(width, height)
	}

	f.surface.Translate(width/2, height/2)
	f.surface.SetFillColor(f.config.FadeColor)
	f.surface.SetStrokeColor(f.config.TrailColor)

	f.requestFrame()
}

// frame runs one tick: move and draw every star, then fade the whole surface
func (f *Field) frame() {
	f.pending = false

	width, height := f.container.Size()
	f.width, f.height = width, height

	for i := range f.stars {
		star := &f.stars[i]
		star.advance(width, height, f.config.Speed, f.config.SpeedFactor, f.config.PositionFactor)
		star.Draw(f.surface)
	}

	// Fade after the strokes so older trails dim instead of accumulating.
	f.surface.FillRect(-width/2, -height/2, width, height)

	f.requestFrame()
}

func (f *Field) requestFrame() {
	f.frameID = f.scheduler.RequestFrame(f.frame)
	f.pending = true
}

// Stars returns the star collection. Callers must not modify it.
func (f *Field) Stars() []Star {
	return f.stars
}

// Size returns the logical size used by the last setup or frame
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Pending reports whether a frame is currently requested
func (f *Field) Pending() bool {
	return f.pending
}

// Config returns the field configuration
func (f *Field) Config() Config {
	return f.config
}

// pixelRatio returns the container's density, defaulting to 1 when the
// container cannot report a usable one
func pixelRatio(c Container) float64 {
	pr, ok := c.(pixelRatioer)
	if !ok {
		return 1
	}
	ratio := pr.PixelRatio()
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return 1
	}
	return ratio
}
