package starfield

// Box is a sizing container with a fixed logical size until resized.
// Hosts without their own size source (headless renders, terminals) drive
// the field through one.
type Box struct {
	width, height float64
	ratio         float64
	observers     []func()
}

// NewBox creates a container of the given logical size at pixel ratio 1
func NewBox(width, height float64) *Box {
	return &Box{
		width:  width,
		height: height,
		ratio:  1,
	}
}

// Size returns the logical size
func (b *Box) Size() (float64, float64) {
	return b.width, b.height
}

// PixelRatio returns the backing pixels per logical unit
func (b *Box) PixelRatio() float64 {
	return b.ratio
}

// SetPixelRatio changes the density used at the next setup
func (b *Box) SetPixelRatio(ratio float64) {
	b.ratio = ratio
}

// Observe registers fn to run after every size change
func (b *Box) Observe(fn func()) {
	b.observers = append(b.observers, fn)
}

// Resize sets a new logical size and notifies observers if it changed
func (b *Box) Resize(width, height float64) {
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	for _, fn := range b.observers {
		fn()
	}
}
