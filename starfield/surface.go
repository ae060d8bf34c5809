package starfield

import "image/color"

// Surface is a 2D drawing surface with canvas-like path and transform state.
//
// Resize replaces the backing pixel buffer and resets the transform to
// identity. Coordinates passed to the drawing calls are in user space and go
// through the current transform; line widths are in user space too.
type Surface interface {
	Resize(backingWidth, backingHeight int, logicalWidth, logicalHeight float64)
	Scale(sx, sy float64)
	Translate(dx, dy float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(width float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	FillRect(x, y, width, height float64)
}

// Container reports the logical drawable size and announces size changes
type Container interface {
	Size() (width, height float64)
	Observe(fn func())
}

// pixelRatioer is implemented by containers that know their display density
type pixelRatioer interface {
	PixelRatio() float64
}

// Scheduler runs callbacks once per display refresh
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
