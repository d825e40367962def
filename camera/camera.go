// Package camera maps between window pixels and the fixed simulation frame.
package camera

// Camera converts between screen coordinates and world coordinates.
// The world is a fixed reference rectangle centered at the origin; the
// window may be any size and is stretched to cover it on both axes.
type Camera struct {
	// Viewport dimensions (window size in pixels)
	ViewportW, ViewportH float32

	// Reference frame dimensions
	WorldW, WorldH float32
}

// New creates a camera for a window of the given size over a worldW × worldH frame.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates the viewport dimensions. Non-positive sizes (minimized
// windows) are ignored so the mapping stays finite.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Scale returns the world units per screen pixel on each axis.
func (c *Camera) Scale() (sx, sy float32) {
	return c.WorldW / c.ViewportW, c.WorldH / c.ViewportH
}

// ScreenToWorld converts a pixel position to world coordinates.
// The window's top-left corner maps to (-WorldW/2, -WorldH/2).
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	kx, ky := c.Scale()
	return sx*kx - c.WorldW/2, sy*ky - c.WorldH/2
}

// ScreenDeltaToWorld converts a pixel displacement to a world displacement.
func (c *Camera) ScreenDeltaToWorld(dx, dy float32) (wx, wy float32) {
	kx, ky := c.Scale()
	return dx * kx, dy * ky
}

// WorldToScreen converts world coordinates to a pixel position.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	kx, ky := c.Scale()
	return (wx + c.WorldW/2) / kx, (wy + c.WorldH/2) / ky
}

// PixelsPerUnit returns the smaller of the two axis magnifications, used to
// size round shapes so they stay circular in a stretched window.
func (c *Camera) PixelsPerUnit() float32 {
	px := c.ViewportW / c.WorldW
	py := c.ViewportH / c.WorldH
	if py < px {
		return py
	}
	return px
}

// IsVisible returns true if a circle at (wx, wy) with given world radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.WorldW/2 + radius
	halfH := c.WorldH/2 + radius
	return absf(wx) <= halfW && absf(wy) <= halfH
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
