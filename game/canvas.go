package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type point struct {
	x, y float64
}

// Canvas is an offscreen ebiten image with canvas-like drawing state.
// It keeps its pixels between frames, which the trail fade depends on.
type Canvas struct {
	image *ebiten.Image
	geoM  ebiten.GeoM

	fill      color.Color
	stroke    color.Color
	lineWidth float64

	// subpaths of the current path, in user space
	path [][]point
}

// NewCanvas creates an empty canvas; the backing image is allocated by the
// first Resize
func NewCanvas() *Canvas {
	return &Canvas{
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

// Image returns the backing image
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Resize replaces the backing image and resets the transform
func (c *Canvas) Resize(backingWidth, backingHeight int, logicalWidth, logicalHeight float64) {
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(max(backingWidth, 1), max(backingHeight, 1))
	c.geoM.Reset()
	c.lineWidth = 1
	c.path = c.path[:0]
}

// Scale scales the current transform
func (c *Canvas) Scale(sx, sy float64) {
	var t ebiten.GeoM
	t.Scale(sx, sy)
	c.prepend(t)
}

// Translate moves the origin of the current transform
func (c *Canvas) Translate(dx, dy float64) {
	var t ebiten.GeoM
	t.Translate(dx, dy)
	c.prepend(t)
}

// prepend applies t to points before the existing transform, so the most
// recent Scale or Translate acts first, as on an HTML canvas
func (c *Canvas) prepend(t ebiten.GeoM) {
	t.Concat(c.geoM)
	c.geoM = t
}

// SetFillColor sets the color used by FillRect
func (c *Canvas) SetFillColor(clr color.Color) {
	c.fill = clr
}

// SetStrokeColor sets the color used by Stroke
func (c *Canvas) SetStrokeColor(clr color.Color) {
	c.stroke = clr
}

// SetLineWidth sets the stroke width in user space
func (c *Canvas) SetLineWidth(width float64) {
	c.lineWidth = width
}

// BeginPath discards the current path
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath
func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, []point{{x, y}})
}

// LineTo extends the current subpath
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], point{x, y})
}

// Stroke draws every segment of the current path and clears it
func (c *Canvas) Stroke() {
	width := float32(c.lineWidth * c.transformScale())
	if width > 0 {
		for _, sub := range c.path {
			for i := 1; i < len(sub); i++ {
				x0, y0 := c.geoM.Apply(sub[i-1].x, sub[i-1].y)
				x1, y1 := c.geoM.Apply(sub[i].x, sub[i].y)
				vector.StrokeLine(c.image, float32(x0), float32(y0), float32(x1), float32(y1), width, c.stroke, true)
			}
		}
	}
	c.path = c.path[:0]
}

// FillRect fills an axis-aligned rectangle in user space
func (c *Canvas) FillRect(x, y, width, height float64) {
	x0, y0 := c.geoM.Apply(x, y)
	x1, y1 := c.geoM.Apply(x+width, y+height)
	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	vector.DrawFilledRect(c.image, float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY), c.fill, false)
}

// transformScale is the uniform scale of the current transform
func (c *Canvas) transformScale() float64 {
	a, b := c.geoM.Element(0, 0), c.geoM.Element(0, 1)
	d, e := c.geoM.Element(1, 0), c.geoM.Element(1, 1)
	return math.Sqrt(math.Abs(a*e - b*d))
}
