package components

// Color is an 8-bit RGBA color. Renderers convert it to their own color type.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns an opaque-or-translucent color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Dot is a single particle of the swarm.
// Density and CursorDist are derived each frame and only cached for rendering.
type Dot struct {
	Position   Vec2
	Velocity   Vec2
	Density    float32
	Color      Color
	CursorDist float32 // distance to the pointer in simulation space
	Selected   bool    // set by pointer-down, cleared by pointer-up
}

// NewDot creates a dot with no selection and zero cached cursor distance.
func NewDot(pos, vel Vec2, color Color) Dot {
	return Dot{
		Position: pos,
		Velocity: vel,
		Color:    color,
	}
}

// Speed returns the magnitude of the dot's velocity.
func (d *Dot) Speed() float32 {
	return d.Velocity.Len()
}
