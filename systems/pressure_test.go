package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/gushy/components"
)

const (
	testRadius = float32(10)
	testMass   = float32(1.0 / 2000.0)
)

func dotsAt(points ...components.Vec2) []components.Dot {
	dots := make([]components.Dot, len(points))
	for i, p := range points {
		dots[i] = components.NewDot(p, components.Vec2{}, components.Color{})
	}
	return dots
}

func randomDots(rng *rand.Rand, n int, spread float32) []components.Dot {
	dots := make([]components.Dot, n)
	for i := range dots {
		p := components.V((rng.Float32()*2-1)*spread, (rng.Float32()*2-1)*spread)
		dots[i] = components.NewDot(p, components.Vec2{}, components.Color{})
	}
	return dots
}

func testFluid() FluidParams {
	return FluidParams{
		Radius:             testRadius,
		Mass:               testMass,
		TargetDensity:      0.05,
		PressureMultiplier: 10,
		Epsilon:            1e-4,
	}
}

func TestDensitiesNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dots := randomDots(rng, 80, 20)

	densities := ComputeDensities(dots, testRadius, testMass, Parallelism{})
	if len(densities) != len(dots) {
		t.Fatalf("got %d densities for %d dots", len(densities), len(dots))
	}
	for i, d := range densities {
		if d < 0 {
			t.Errorf("density[%d] = %v, want >= 0", i, d)
		}
		// Every dot counts itself
		if d < testMass*SmoothingKernel(testRadius, 0)*0.999 {
			t.Errorf("density[%d] = %v is below the self contribution", i, d)
		}
	}
}

func TestDensityPairAndIsolation(t *testing.T) {
	dots := dotsAt(components.V(0, 0), components.V(5, 0), components.V(100, 100))
	densities := ComputeDensities(dots, testRadius, testMass, Parallelism{})

	self := testMass * SmoothingKernel(testRadius, 0)
	pair := testMass * (SmoothingKernel(testRadius, 0) + SmoothingKernel(testRadius, 5))

	if math.Abs(float64(densities[0]-pair)) > 1e-9 || math.Abs(float64(densities[1]-pair)) > 1e-9 {
		t.Errorf("pair densities = (%v, %v), want %v", densities[0], densities[1], pair)
	}
	if math.Abs(float64(densities[2]-self)) > 1e-9 {
		t.Errorf("isolated density = %v, want %v", densities[2], self)
	}
}

func TestDensityAtMatchesPass(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dots := randomDots(rng, 40, 30)
	densities := ComputeDensities(dots, testRadius, testMass, Parallelism{})

	for i := range dots {
		got := DensityAt(dots, dots[i].Position, testRadius, testMass)
		if got != densities[i] {
			t.Errorf("DensityAt(dot %d) = %v, pass computed %v", i, got, densities[i])
		}
	}

	// An empty point far from the swarm sees nothing
	if got := DensityAt(dots, components.V(1000, 1000), testRadius, testMass); got != 0 {
		t.Errorf("density far away = %v, want 0", got)
	}
}

func TestPressureZeroAtEquilibrium(t *testing.T) {
	p := testFluid()
	dots := dotsAt(components.V(0, 0), components.V(3, 0), components.V(0, 4), components.V(-2, -2))
	densities := []float32{p.TargetDensity, p.TargetDensity, p.TargetDensity, p.TargetDensity}

	for i := range dots {
		f := PressureForce(dots, densities, dots[i].Position, p)
		if !f.IsZero() {
			t.Errorf("pressure at equilibrium for dot %d = %v, want zero", i, f)
		}
	}
}

func TestPressureSymmetricPair(t *testing.T) {
	p := testFluid()
	dots := dotsAt(components.V(0, 0), components.V(4, 0))
	densities := []float32{0.1, 0.1} // equal, above target

	forces := PressureForces(dots, densities, p, Parallelism{})
	a, b := forces[0], forces[1]

	if a.IsZero() {
		t.Fatal("expected non-zero pressure force away from equilibrium")
	}
	if math.Abs(float64(a.Len()-b.Len())) > 1e-9 {
		t.Errorf("magnitudes differ: %v vs %v", a.Len(), b.Len())
	}
	sum := a.Add(b)
	if sum.Len() > 1e-9 {
		t.Errorf("forces not opposite: %v + %v = %v", a, b, sum)
	}
	// Both forces act along the line joining the dots
	if a.Y != 0 || b.Y != 0 {
		t.Errorf("expected forces along x axis, got %v and %v", a, b)
	}
}

func TestPressureSkipsZeroDensity(t *testing.T) {
	p := testFluid()
	dots := dotsAt(components.V(0, 0), components.V(2, 0))
	densities := []float32{0.2, 0}

	f := PressureForce(dots, densities, dots[0].Position, p)
	if !f.IsFinite() {
		t.Fatalf("pressure force not finite: %v", f)
	}
	if !f.IsZero() {
		t.Errorf("zero-density neighbor should be skipped, got %v", f)
	}
}

func TestPressureCoincidentDotsStayFinite(t *testing.T) {
	p := testFluid()
	dots := dotsAt(components.V(1, 1), components.V(1, 1), components.V(1, 1))
	densities := ComputeDensities(dots, p.Radius, p.Mass, Parallelism{})

	for i, f := range PressureForces(dots, densities, p, Parallelism{}) {
		if !f.IsFinite() {
			t.Errorf("force[%d] = %v, want finite", i, f)
		}
	}
}

func TestPressureIgnoresDotsOutsideRadius(t *testing.T) {
	p := testFluid()
	dots := dotsAt(components.V(0, 0), components.V(p.Radius+1, 0))
	densities := []float32{0.3, 0.3}

	if f := PressureForce(dots, densities, dots[0].Position, p); !f.IsZero() {
		t.Errorf("expected zero force from out-of-range neighbor, got %v", f)
	}
}

func TestParallelPassesMatchSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dots := randomDots(rng, 150, 30)
	p := testFluid()
	par := Parallelism{Enabled: true, Threshold: 1, Workers: 4}

	serialD := ComputeDensities(dots, p.Radius, p.Mass, Parallelism{})
	parallelD := ComputeDensities(dots, p.Radius, p.Mass, par)
	for i := range serialD {
		if serialD[i] != parallelD[i] {
			t.Fatalf("density[%d]: serial %v, parallel %v", i, serialD[i], parallelD[i])
		}
	}

	serialF := PressureForces(dots, serialD, p, Parallelism{})
	parallelF := PressureForces(dots, serialD, p, par)
	for i := range serialF {
		if serialF[i] != parallelF[i] {
			t.Fatalf("pressure[%d]: serial %v, parallel %v", i, serialF[i], parallelF[i])
		}
	}
}

func TestForEachChunkCoversEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name string
		n    int
		par  Parallelism
	}{
		{"serial", 10, Parallelism{}},
		{"below threshold", 10, Parallelism{Enabled: true, Threshold: 64}},
		{"uneven chunks", 10, Parallelism{Enabled: true, Threshold: 1, Workers: 3}},
		{"more workers than items", 3, Parallelism{Enabled: true, Threshold: 1, Workers: 8}},
		{"empty", 0, Parallelism{Enabled: true, Threshold: 1, Workers: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make([]int, tt.n)
			tt.par.forEachChunk(tt.n, func(start, end int) {
				for i := start; i < end; i++ {
					counts[i]++
				}
			})
			for i, c := range counts {
				if c != 1 {
					t.Errorf("index %d visited %d times", i, c)
				}
			}
		})
	}
}
