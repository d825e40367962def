package systems

import "github.com/pthm-cable/gushy/components"

// ComputeDensities returns one density per dot:
// density[i] = mass · Σ_j W(r, |p_i - p_j|) over every j within r, i included.
func ComputeDensities(snapshot []components.Dot, radius, mass float32, par Parallelism) []float32 {
	densities := make([]float32, len(snapshot))
	par.forEachChunk(len(snapshot), func(start, end int) {
		for i := start; i < end; i++ {
			densities[i] = DensityAt(snapshot, snapshot[i].Position, radius, mass)
		}
	})
	return densities
}

// DensityAt sums kernel-weighted mass around point.
func DensityAt(snapshot []components.Dot, point components.Vec2, radius, mass float32) float32 {
	var sum float32
	for j := range snapshot {
		d := point.DistanceTo(snapshot[j].Position)
		if d <= radius {
			sum += SmoothingKernel(radius, d)
		}
	}
	return mass * sum
}
