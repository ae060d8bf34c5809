// Package term runs a starfield inside a terminal. Each cell shows two
// vertically stacked pixels of a raster canvas using the upper half block.
package term

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"starfield/raster"
	"starfield/starfield"
)

const halfBlock = '▀'

// Host drives a field from a ticker and mirrors it onto a tcell screen
type Host struct {
	screen   tcell.Screen
	canvas   *raster.Canvas
	box      *starfield.Box
	frames   *starfield.FrameQueue
	field    *starfield.Field
	interval time.Duration
}

// New creates a host for an initialized screen
func New(screen tcell.Screen, config starfield.Config, interval time.Duration) (*Host, error) {
	if screen == nil {
		return nil, fmt.Errorf("failed to create terminal host: %w", starfield.ErrNoSurface)
	}
	if interval <= 0 {
		interval = 16 * time.Millisecond // ~60 FPS
	}

	cols, rows := screen.Size()
	h := &Host{
		screen:   screen,
		canvas:   raster.NewCanvas(1, 1),
		box:      starfield.NewBox(logicalSize(cols, rows)),
		frames:   starfield.NewFrameQueue(),
		interval: interval,
	}

	field, err := starfield.New(config, h.canvas, h.box, h.frames)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal host: %w", err)
	}
	h.field = field

	return h, nil
}

// logicalSize maps a cell grid to canvas pixels: one column, two rows per cell
func logicalSize(cols, rows int) (float64, float64) {
	return float64(cols), float64(rows * 2)
}

// Field returns the hosted field
func (h *Host) Field() *starfield.Field {
	return h.field
}

// Run ticks the field until ctx is done or the user leaves with Escape or
// Ctrl-C
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}

// Tick runs pending frames and presents the canvas
func (h *Host) Tick() {
	h.frames.RunFrame()
	h.Blit()
	h.screen.Show()
}

// handleEvent returns false when the host should stop
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.box.Resize(logicalSize(cols, rows))
		h.screen.Sync()
	}
	return true
}

// Blit copies the canvas into the screen cells
func (h *Host) Blit() {
	img := h.canvas.Image()
	cols, rows := h.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := cellColors(img, x, y)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// cellColors returns the colors of the two pixels behind cell (x, y), as
// seen over a black background. Premultiplied RGBA over black is just the
// color channels.
func cellColors(img *image.RGBA, x, y int) (tcell.Color, tcell.Color) {
	return pixelColor(img, x, 2*y), pixelColor(img, x, 2*y+1)
}

func pixelColor(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
