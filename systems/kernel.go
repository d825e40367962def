// Package systems contains the per-frame passes of the swarm: smoothing kernels,
// the density field, the pressure solver, the force contributors and the integrator.
//
// Every pass is a pure function over a read-only snapshot of the dots; callers apply
// the results to the live collection in a separate stage.
package systems

import "math"

// SmoothingKernel is the poly6-style weight W(r, d) = max(r²-d², 0)³ / (π r⁸ / 4).
// It peaks at 4/(π r²) for d = 0 and falls smoothly to zero at the support radius.
func SmoothingKernel(radius, dist float32) float32 {
	volume := math.Pi * pow8(radius) / 4
	v := radius*radius - dist*dist
	if v <= 0 {
		return 0
	}
	return v * v * v / volume
}

// DerivativeSmoothingKernel is dW/dd = -24/(π r⁸) · d · (r²-d²)².
// It vanishes at d = 0 and at the support radius; outside the support it is zero.
func DerivativeSmoothingKernel(radius, dist float32) float32 {
	if dist >= radius {
		return 0
	}
	f := radius*radius - dist*dist
	scale := -24 / (math.Pi * pow8(radius))
	return scale * dist * f * f
}

func pow8(x float32) float32 {
	x2 := x * x
	x4 := x2 * x2
	return x4 * x4
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
