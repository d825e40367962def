package systems

import (
	"math"
	"testing"
)

func TestSmoothingKernelZeroOutsideSupport(t *testing.T) {
	radius := float32(10)
	for _, d := range []float32{10, 10.001, 12, 100} {
		if got := SmoothingKernel(radius, d); got != 0 {
			t.Errorf("SmoothingKernel(%v, %v) = %v, want 0", radius, d, got)
		}
	}
}

func TestSmoothingKernelPeak(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
	}{
		{"unit radius", 1},
		{"default radius", 10},
		{"wide radius", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := 4 / (math.Pi * float64(tt.radius) * float64(tt.radius))
			got := float64(SmoothingKernel(tt.radius, 0))
			if math.Abs(got-want)/want > 1e-5 {
				t.Errorf("SmoothingKernel(%v, 0) = %v, want %v", tt.radius, got, want)
			}
		})
	}
}

func TestSmoothingKernelMonotoneDecay(t *testing.T) {
	radius := float32(10)
	prev := SmoothingKernel(radius, 0)
	for d := float32(0.5); d < radius; d += 0.5 {
		w := SmoothingKernel(radius, d)
		if w < 0 {
			t.Fatalf("kernel negative at d=%v: %v", d, w)
		}
		if w >= prev {
			t.Fatalf("kernel not decreasing at d=%v: %v >= %v", d, w, prev)
		}
		prev = w
	}
}

func TestDerivativeVanishesAtCenterAndSupport(t *testing.T) {
	for _, radius := range []float32{1, 10, 40} {
		if got := DerivativeSmoothingKernel(radius, 0); got != 0 {
			t.Errorf("DerivativeSmoothingKernel(%v, 0) = %v, want 0", radius, got)
		}
		if got := DerivativeSmoothingKernel(radius, radius); got != 0 {
			t.Errorf("DerivativeSmoothingKernel(%v, %v) = %v, want 0", radius, radius, got)
		}
		if got := DerivativeSmoothingKernel(radius, radius*2); got != 0 {
			t.Errorf("DerivativeSmoothingKernel outside support = %v, want 0", got)
		}
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	radius := float32(10)
	const h = 0.01

	for _, d := range []float32{2, 5, 8} {
		numeric := (float64(SmoothingKernel(radius, d+h)) - float64(SmoothingKernel(radius, d-h))) / (2 * h)
		analytic := float64(DerivativeSmoothingKernel(radius, d))
		if analytic >= 0 {
			t.Errorf("derivative at d=%v should be negative, got %v", d, analytic)
		}
		if math.Abs(numeric-analytic) > 1e-5 {
			t.Errorf("derivative at d=%v = %v, finite difference %v", d, analytic, numeric)
		}
	}
}

func TestDensityToPressure(t *testing.T) {
	tests := []struct {
		name                        string
		density, target, multiplier float32
		want                        float32
	}{
		{"at target", 0.05, 0.05, 10, 0},
		{"above target", 0.15, 0.05, 10, 1},
		{"below target", 0, 0.05, 10, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DensityToPressure(tt.density, tt.target, tt.multiplier)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("DensityToPressure(%v, %v, %v) = %v, want %v",
					tt.density, tt.target, tt.multiplier, got, tt.want)
			}
		})
	}
}
