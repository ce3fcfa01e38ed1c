// Package pad converts pointer positions on the XY surface into 7-bit
// controller values and back.
package pad

import "math"

const (
	// MaxValue is the largest 7-bit MIDI data value
	MaxValue = 127

	// FallbackWidth and FallbackHeight stand in for a surface that has not
	// been laid out yet
	FallbackWidth  = 400
	FallbackHeight = 250
)

// Point is a position in surface coordinates, origin top-left
type Point struct {
	X, Y float32
}

// Size is the rendered size of the surface
type Size struct {
	Width, Height float32
}

// effective substitutes the fallback size for any dimension of 1 or less
func (s Size) effective() Size {
	if s.Width <= 1 {
		s.Width = FallbackWidth
	}
	if s.Height <= 1 {
		s.Height = FallbackHeight
	}
	return s
}

// Map returns the X and Y values for pos on a surface of the given size.
// Positions outside the surface are pulled to the nearest edge. Y grows
// upward, so the top edge maps to 127.
func Map(pos Point, surface Size) (x, y uint8) {
	s := surface.effective()
	cx := clampFloat(pos.X, 0, s.Width)
	cy := clampFloat(pos.Y, 0, s.Height)

	x = scale(float64(cx) / float64(s.Width))
	y = scale(float64(s.Height-cy) / float64(s.Height))
	return x, y
}

// Position is the inverse of Map and places the indicator for x, y
func Position(x, y uint8, surface Size) Point {
	s := surface.effective()
	vx := float32(Clamp(int(x))) / MaxValue
	vy := float32(Clamp(int(y))) / MaxValue
	return Point{
		X: vx * s.Width,
		Y: s.Height - vy*s.Height,
	}
}

// Clamp limits v to the 7-bit range
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

func scale(ratio float64) uint8 {
	return uint8(Clamp(int(math.Floor(ratio * MaxValue))))
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
