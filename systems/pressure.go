package systems

import "github.com/pthm-cable/gushy/components"

// FluidParams holds the solver inputs shared by the density and pressure passes.
type FluidParams struct {
	Radius             float32 // kernel support radius
	Mass               float32 // per-dot mass
	TargetDensity      float32
	PressureMultiplier float32
	Epsilon            float32 // distance floor for direction and gradient
}

// DensityToPressure maps density to signed pressure: (ρ - target) · multiplier.
func DensityToPressure(density, target, multiplier float32) float32 {
	return (density - target) * multiplier
}

// PressureForce accumulates the pressure force acting at center:
//
//	Σ_j pressure(ρ_j) · dir_j · ∇W(r, d_j) · mass / ρ_j
//
// where dir_j = -(p_j - center) / max(d_j, ε). Neighbors outside the radius and
// neighbors with zero density are skipped. densities[j] belongs to snapshot[j].
func PressureForce(snapshot []components.Dot, densities []float32, center components.Vec2, p FluidParams) components.Vec2 {
	var total components.Vec2
	for j := range snapshot {
		offset := snapshot[j].Position.Sub(center)
		dist := offset.Len()
		if dist > p.Radius {
			continue
		}
		density := densities[j]
		if density == 0 {
			continue
		}

		guarded := maxf(dist, p.Epsilon)
		direction := offset.Neg().Div(guarded)
		slope := DerivativeSmoothingKernel(p.Radius, guarded)
		pressure := DensityToPressure(density, p.TargetDensity, p.PressureMultiplier)

		total = total.Add(direction.Scale(pressure * slope * p.Mass / density))
	}
	return total
}

// PressureForces evaluates PressureForce once per dot with the dot's own
// position as the query center.
func PressureForces(snapshot []components.Dot, densities []float32, p FluidParams, par Parallelism) []components.Vec2 {
	forces := make([]components.Vec2, len(snapshot))
	par.forEachChunk(len(snapshot), func(start, end int) {
		for i := start; i < end; i++ {
			forces[i] = PressureForce(snapshot, densities, snapshot[i].Position, p)
		}
	})
	return forces
}
