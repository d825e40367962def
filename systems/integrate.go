package systems

import "github.com/pthm-cable/gushy/components"

// Bounds describes the rectangular arena walls, centered at the origin.
type Bounds struct {
	HalfW, HalfH float32 // wall positions at ±HalfW, ±HalfH
	Nudge        float32 // distance a reflected dot is placed inside the wall
	Damping      float32 // velocity multiplier on contact, < 1
}

// Integrate advances position by the already-updated velocity (semi-implicit Euler).
// There is no time delta: every call is one nominal step scaled by speedScale.
func Integrate(d *components.Dot, speedScale float32) {
	d.Position = d.Position.Add(d.Velocity.Scale(speedScale))
}

// ReflectBounds keeps a dot inside the arena. On contact with a wall the coordinate
// is clamped just inside, the normal velocity is reversed and damped, and the
// tangential velocity is damped as well so dots do not stick in corners.
// Each axis is checked independently. Reports whether any wall was touched.
func ReflectBounds(d *components.Dot, b Bounds) bool {
	hit := false
	if d.Position.X >= b.HalfW {
		d.Position.X = b.HalfW - b.Nudge
		d.Velocity.X = -d.Velocity.X * b.Damping
		d.Velocity.Y *= b.Damping
		hit = true
	} else if d.Position.X <= -b.HalfW {
		d.Position.X = -b.HalfW + b.Nudge
		d.Velocity.X = -d.Velocity.X * b.Damping
		d.Velocity.Y *= b.Damping
		hit = true
	}

	if d.Position.Y >= b.HalfH {
		d.Position.Y = b.HalfH - b.Nudge
		d.Velocity.Y = -d.Velocity.Y * b.Damping
		d.Velocity.X *= b.Damping
		hit = true
	} else if d.Position.Y <= -b.HalfH {
		d.Position.Y = -b.HalfH + b.Nudge
		d.Velocity.Y = -d.Velocity.Y * b.Damping
		d.Velocity.X *= b.Damping
		hit = true
	}
	return hit
}
