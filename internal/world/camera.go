package world

import "github.com/vovakirdan/tilewalk/internal/core"

// Camera is the visible viewport in world pixels.
type Camera struct {
	X, Y int // Top-left corner
	W, H int // Fixed to the screen size
}

// Follow centers the camera on (px, py) and clamps it to the world so the
// viewport never shows past an edge. A world smaller than the screen pins the
// camera at the origin.
func (c *Camera) Follow(px, py, worldW, worldH int) {
	c.X = core.Clamp(px-c.W/2, 0, worldW-c.W)
	c.Y = core.Clamp(py-c.H/2, 0, worldH-c.H)
}

// Rect returns the viewport as a rectangle.
func (c Camera) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// ToScreen converts a world position to screen pixels.
func (c Camera) ToScreen(x, y int) (int, int) {
	return x - c.X, y - c.Y
}
