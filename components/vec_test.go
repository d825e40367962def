package components

import (
	"math"
	"testing"
)

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v, want (6, 8)", got)
	}
	if got := a.Div(2); got != V(1.5, 2) {
		t.Errorf("Div = %v, want (1.5, 2)", got)
	}
	if got := a.Neg(); got != V(-3, -4) {
		t.Errorf("Neg = %v, want (-3, -4)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := a.DistanceTo(V(0, 0)); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !approx(n.Len(), 1, 1e-6) {
		t.Errorf("normalized length = %v, want 1", n.Len())
	}
	if !approx(n.X, 0.6, 1e-6) || !approx(n.Y, 0.8, 1e-6) {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", n)
	}

	// The zero vector normalizes to zero rather than NaN
	z := Vec2{}.Normalize()
	if !z.IsZero() || !z.IsFinite() {
		t.Errorf("zero Normalize = %v, want (0, 0)", z)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float32
		want  Vec2
	}{
		{"quarter turn", V(1, 0), math.Pi / 2, V(0, 1)},
		{"half turn", V(1, 2), math.Pi, V(-1, -2)},
		{"no turn", V(5, -3), 0, V(5, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if !approx(got.X, tt.want.X, 1e-5) || !approx(got.Y, tt.want.Y, 1e-5) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.v, tt.angle, got, tt.want)
			}
			if !approx(got.Len(), tt.v.Len(), 1e-5) {
				t.Errorf("rotation changed length: %v -> %v", tt.v.Len(), got.Len())
			}
		})
	}
}

func TestVec2Angle(t *testing.T) {
	if got := V(0, 1).Angle(); !approx(got, math.Pi/2, 1e-6) {
		t.Errorf("Angle = %v, want Pi/2", got)
	}
}

func TestVec2IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if V(nan, 0).IsFinite() {
		t.Error("expected NaN vector to be non-finite")
	}
	if V(0, inf).IsFinite() {
		t.Error("expected Inf vector to be non-finite")
	}
	if !V(1, 2).IsFinite() {
		t.Error("expected (1, 2) to be finite")
	}
}
