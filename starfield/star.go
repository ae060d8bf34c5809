package starfield

import "math/rand"

// Star is a single point of light moving away from the center
type Star struct {
	x, y         float64 // center-relative position
	prevX, prevY float64 // position at the previous tick, trail anchor
	z            float64 // depth since last reset, doubles as stroke width
}

// NewStar creates a star at (x, y) with depth z and no trail
func NewStar(x, y, z float64) Star {
	return Star{x: x, y: y, prevX: x, prevY: y, z: z}
}

// Position returns the current position
func (s *Star) Position() (float64, float64) {
	return s.x, s.y
}

// Previous returns the position at the previous tick
func (s *Star) Previous() (float64, float64) {
	return s.prevX, s.prevY
}

// Depth returns the distance traveled since the last reset
func (s *Star) Depth() float64 {
	return s.z
}

// Update advances the star one tick using the stock factors
func (s *Star) Update(width, height, speed float64) {
	s.advance(width, height, speed, StarSpeedFactor, StarPositionFactor)
}

// advance moves the star outward proportionally to its own offset and depth,
// resetting it once it leaves the visible half-extents
func (s *Star) advance(width, height, speed, speedFactor, positionFactor float64) {
	s.prevX = s.x
	s.prevY = s.y
	s.z += speed * speedFactor
	s.x += s.x * (speed * positionFactor) * s.z
	s.y += s.y * (speed * positionFactor) * s.z

	if s.outOfBounds(width, height) {
		s.Reset(width, height)
	}
}

// outOfBounds is exclusive: a star exactly on an edge is still visible
func (s *Star) outOfBounds(width, height float64) bool {
	return s.x > width/2 ||
		s.x < -width/2 ||
		s.y > height/2 ||
		s.y < -height/2
}

// Reset scatters the star to a random in-bounds position with zero depth
func (s *Star) Reset(width, height float64) {
	s.x = rand.Float64()*width - width/2
	s.y = rand.Float64()*height - height/2
	s.prevX = s.x
	s.prevY = s.y
	s.z = 0
}

// Draw strokes the trail segment from the current to the previous position
func (s *Star) Draw(surface Surface) {
	surface.SetLineWidth(s.z)
	surface.BeginPath()
	surface.MoveTo(s.x, s.y)
	surface.LineTo(s.prevX, s.prevY)
	surface.Stroke()
}
