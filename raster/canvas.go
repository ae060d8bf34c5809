// Package raster implements the starfield drawing surface in software on top
// of gg, for hosts without a GPU window.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Canvas is a gg-backed drawing surface
type Canvas struct {
	dc *gg.Context

	logicalWidth  float64
	logicalHeight float64

	// scale is the uniform factor of the current transform; gg does not
	// scale stroke widths with the matrix, so strokes apply it by hand
	scale     float64
	lineWidth float64
}

// NewCanvas creates a canvas with a backing buffer of the given size
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height, float64(width), float64(height))
	return c
}

// Resize replaces the backing buffer and resets all drawing state
func (c *Canvas) Resize(backingWidth, backingHeight int, logicalWidth, logicalHeight float64) {
	c.dc = gg.NewContext(max(backingWidth, 1), max(backingHeight, 1))
	c.dc.SetLineCapButt()
	c.logicalWidth = logicalWidth
	c.logicalHeight = logicalHeight
	c.scale = 1
	c.lineWidth = 1
}

// Scale scales the current transform
func (c *Canvas) Scale(sx, sy float64) {
	c.dc.Scale(sx, sy)
	c.scale *= math.Sqrt(math.Abs(sx * sy))
}

// Translate moves the origin of the current transform
func (c *Canvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

// SetFillColor sets the color used by FillRect
func (c *Canvas) SetFillColor(clr color.Color) {
	c.dc.SetFillStyle(gg.NewSolidPattern(clr))
}

// SetStrokeColor sets the color used by Stroke
func (c *Canvas) SetStrokeColor(clr color.Color) {
	c.dc.SetStrokeStyle(gg.NewSolidPattern(clr))
}

// SetLineWidth sets the stroke width in user space
func (c *Canvas) SetLineWidth(width float64) {
	c.lineWidth = width
}

// BeginPath discards the current path
func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
}

// MoveTo starts a new subpath at (x, y)
func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// LineTo adds a segment to (x, y)
func (c *Canvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// Stroke strokes and clears the current path
func (c *Canvas) Stroke() {
	width := c.lineWidth * c.scale
	if width <= 0 {
		c.dc.ClearPath()
		return
	}
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

// FillRect fills a rectangle in user space
func (c *Canvas) FillRect(x, y, width, height float64) {
	c.dc.DrawRectangle(x, y, width, height)
	c.dc.Fill()
}

// Image returns the backing buffer (premultiplied RGBA)
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// LogicalSize returns the size the backing buffer is displayed at
func (c *Canvas) LogicalSize() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}
