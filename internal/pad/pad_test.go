package pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCorners(t *testing.T) {
	surface := Size{Width: 400, Height: 250}

	tests := []struct {
		name  string
		pos   Point
		wantX uint8
		wantY uint8
	}{
		{"top left", Point{0, 0}, 0, 127},
		{"bottom right", Point{400, 250}, 127, 0},
		{"top right", Point{400, 0}, 127, 127},
		{"bottom left", Point{0, 250}, 0, 0},
		{"centre", Point{200, 125}, 63, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Map(tt.pos, surface)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestMapClampsOutsideSurface(t *testing.T) {
	surface := Size{Width: 400, Height: 250}

	x, y := Map(Point{-50, -10}, surface)
	assert.Equal(t, uint8(0), x)
	assert.Equal(t, uint8(127), y)

	x, y = Map(Point{900, 900}, surface)
	assert.Equal(t, uint8(127), x)
	assert.Equal(t, uint8(0), y)
}

func TestMapFallbackSize(t *testing.T) {
	// An unlaid-out surface behaves like 400x250
	for _, surface := range []Size{{0, 0}, {1, 1}, {-3, 0.5}} {
		x, y := Map(Point{200, 125}, surface)
		assert.Equal(t, uint8(63), x, "surface %v", surface)
		assert.Equal(t, uint8(63), y, "surface %v", surface)
	}

	// Only the degenerate dimension is replaced
	x, y := Map(Point{50, 125}, Size{Width: 100, Height: 0})
	assert.Equal(t, uint8(63), x)
	assert.Equal(t, uint8(63), y)
}

func TestMapRangeAndMonotonic(t *testing.T) {
	for _, surface := range []Size{{400, 250}, {123, 77}, {1000, 31}} {
		prevX := -1
		for px := float32(0); px <= surface.Width; px += surface.Width / 97 {
			x, _ := Map(Point{px, 0}, surface)
			assert.LessOrEqual(t, int(x), MaxValue)
			assert.GreaterOrEqual(t, int(x), prevX, "x decreased at %v on %v", px, surface)
			prevX = int(x)
		}

		prevY := MaxValue + 1
		for py := float32(0); py <= surface.Height; py += surface.Height / 89 {
			_, y := Map(Point{0, py}, surface)
			assert.LessOrEqual(t, int(y), MaxValue)
			assert.LessOrEqual(t, int(y), prevY, "y increased at %v on %v", py, surface)
			prevY = int(y)
		}
	}
}

func TestMapFollowsResize(t *testing.T) {
	x, _ := Map(Point{200, 0}, Size{Width: 400, Height: 250})
	assert.Equal(t, uint8(63), x)

	x, _ = Map(Point{200, 0}, Size{Width: 800, Height: 250})
	assert.Equal(t, uint8(31), x)
}

func TestPosition(t *testing.T) {
	surface := Size{Width: 400, Height: 250}

	assert.Equal(t, Point{0, 250}, Position(0, 0, surface))
	assert.Equal(t, Point{400, 0}, Position(127, 127, surface))

	p := Position(64, 64, Size{})
	assert.InDelta(t, 201.57, p.X, 0.01)
	assert.InDelta(t, 124.02, p.Y, 0.01)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-1))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 64, Clamp(64))
	assert.Equal(t, 127, Clamp(127))
	assert.Equal(t, 127, Clamp(128))
}
