package systems

import "github.com/pthm-cable/gushy/components"

// ForceParams configures the interactive force contributors.
// Each contributor can be switched off independently; with all of them off only
// the pressure force and the ambient bias act on the dots.
type ForceParams struct {
	Centripetal       bool
	CenterRepulsion   bool
	ParticleRepulsion bool

	Center                  components.Vec2
	CircularStrength        float32
	CountConstant           float32 // k in the k/n centripetal scaling
	RepulsiveStrength       float32
	CenterRepulsiveRadius   float32
	CenterPerturbation      components.Vec2
	ParticleRepulsiveRadius float32
	ZoomRadiusFactor        float32
	AmbientBias             components.Vec2
	Epsilon                 float32
}

// Scales are the runtime-tunable multipliers read by the integrator.
type Scales struct {
	Speed float32
	Force float32
	Zoom  float32
}

// CentripetalForce returns the force needed to keep pos on a circular path
// around center at the current speed: |v|² / d_c toward the center, times strength.
func CentripetalForce(pos, vel, center components.Vec2, strength, eps float32) components.Vec2 {
	toCenter := center.Sub(pos)
	dist := maxf(toCenter.Len(), eps)
	direction := toCenter.Div(dist)
	return direction.Scale(vel.LenSq() / dist * strength)
}

// CenterRepulsion pushes a dot away from center when it is closer than radius.
// The fixed perturbation keeps dots from stalling exactly at the center.
func CenterRepulsion(pos, center components.Vec2, radius, strength float32, perturbation components.Vec2, eps float32) (components.Vec2, bool) {
	toCenter := center.Sub(pos)
	dist := toCenter.Len()
	if dist >= radius {
		return components.Vec2{}, false
	}
	direction := toCenter.Div(maxf(dist, eps))
	return direction.Neg().Scale(strength).Add(perturbation), true
}

// RepulsionRadius is the zoom-dependent pairwise repulsion range.
func RepulsionRadius(base, factor, zoom float32) float32 {
	return base + factor*zoom
}

// ParticleRepulsion sums a 1/d push away from every other dot within radius.
// Dots at exactly the same position, self included, are skipped.
func ParticleRepulsion(pos components.Vec2, snapshot []components.Dot, radius, strength, eps float32) components.Vec2 {
	var total components.Vec2
	for j := range snapshot {
		other := snapshot[j].Position
		if other == pos {
			continue
		}
		toOther := other.Sub(pos)
		dist := toOther.Len()
		if dist >= radius {
			continue
		}
		guarded := maxf(dist, eps)
		direction := toOther.Div(guarded)
		total = total.Add(direction.Neg().Scale(strength / guarded))
	}
	return total
}

// ApplyForces adds one frame of forces to d.Velocity in a fixed order:
// pressure, ambient and centripetal are summed and scaled by the force scale;
// center and particle repulsion are added unscaled. n is the dot count.
func ApplyForces(d *components.Dot, pressure, ambient components.Vec2, snapshot []components.Dot, fp ForceParams, sc Scales) {
	scaled := pressure.Add(ambient)
	if fp.Centripetal && len(snapshot) > 0 {
		c := CentripetalForce(d.Position, d.Velocity, fp.Center, fp.CircularStrength, fp.Epsilon)
		scaled = scaled.Add(c.Scale(fp.CountConstant / float32(len(snapshot))))
	}
	d.Velocity = d.Velocity.Add(scaled.Scale(sc.Force))

	if fp.CenterRepulsion {
		if f, ok := CenterRepulsion(d.Position, fp.Center, fp.CenterRepulsiveRadius,
			fp.RepulsiveStrength, fp.CenterPerturbation, fp.Epsilon); ok {
			d.Velocity = d.Velocity.Add(f)
		}
	}

	if fp.ParticleRepulsion {
		radius := RepulsionRadius(fp.ParticleRepulsiveRadius, fp.ZoomRadiusFactor, sc.Zoom)
		d.Velocity = d.Velocity.Add(ParticleRepulsion(d.Position, snapshot, radius, fp.RepulsiveStrength, fp.Epsilon))
	}
}
