package sim

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/gushy/components"
	"github.com/pthm-cable/gushy/config"
)

// screenAt returns the window position of a simulation point for the
// default 800x600 window.
func screenAt(x, y float32) components.Vec2 {
	return components.V(x+400, y+300)
}

func pointerState(t *testing.T) *State {
	t.Helper()
	s := newTestState(t, func(cfg *config.Config) {
		forcesOff(cfg)
		cfg.Dots.Count = 3
	})
	*s.Dot(0) = components.NewDot(components.V(0, 0), components.Vec2{}, components.RGBA(1, 0, 0, 255))
	*s.Dot(1) = components.NewDot(components.V(10, 0), components.Vec2{}, components.RGBA(2, 0, 0, 255))
	*s.Dot(2) = components.NewDot(components.V(100, 100), components.Vec2{}, components.RGBA(3, 0, 0, 255))
	return s
}

func selectedCount(s *State) int {
	n := 0
	for _, d := range s.Dots() {
		if d.Selected {
			n++
		}
	}
	return n
}

func TestPointerDownPicksNearest(t *testing.T) {
	s := pointerState(t)

	if !s.PointerDown(screenAt(8, 0)) {
		t.Fatal("expected a pick")
	}
	if got := s.Selected(); got != 1 {
		t.Errorf("selected = %d, want 1 (closest to the pointer)", got)
	}
	if !s.HasFocus || s.FocusColor != s.Dot(1).Color {
		t.Errorf("focus color = %+v (set %v), want %+v", s.FocusColor, s.HasFocus, s.Dot(1).Color)
	}
	if selectedCount(s) != 1 {
		t.Errorf("%d dots selected, want 1", selectedCount(s))
	}
}

func TestPointerDownNothingInRange(t *testing.T) {
	s := pointerState(t)
	s.PointerDown(screenAt(0, 0))
	s.PointerUp()
	s.PointerDown(screenAt(1, 1))
	before := s.Selected()

	// Far from every dot: selection must not change
	if s.PointerDown(screenAt(-200, -200)) {
		t.Fatal("expected no pick")
	}
	if got := s.Selected(); got != before {
		t.Errorf("selected = %d, want unchanged %d", got, before)
	}

	fresh := pointerState(t)
	fresh.PointerDown(screenAt(-200, -200))
	if selectedCount(fresh) != 0 {
		t.Error("pointer-down with nothing in range selected a dot")
	}
}

func TestNearestRespectsPickRadius(t *testing.T) {
	s := pointerState(t)
	s.PointerMove(screenAt(39, 0)) // 29 from dot 1

	if got := s.Nearest(); got != 1 {
		t.Errorf("Nearest = %d, want 1 inside the pick radius", got)
	}

	// Exactly on the radius is out of range
	s.PointerMove(screenAt(40, 0))
	if got := s.Nearest(); got != -1 {
		t.Errorf("Nearest = %d, want -1 on the pick radius", got)
	}
	if s.PointerDown(screenAt(40, 0)) {
		t.Error("PointerDown picked a dot on the pick radius")
	}
}

func TestSelectedDotTracksPointer(t *testing.T) {
	s := pointerState(t)
	s.PointerDown(screenAt(0, 0))

	s.PointerMove(screenAt(50, 50))
	if s.Dot(0).Position != components.V(50, 50) {
		t.Errorf("held dot at %v, want (50, 50)", s.Dot(0).Position)
	}

	// Pinned through a step even though its velocity keeps integrating
	s.Dot(0).Velocity = components.V(5, 0)
	s.Step()
	if s.Dot(0).Position != components.V(50, 50) {
		t.Errorf("held dot moved to %v during step", s.Dot(0).Position)
	}
	if s.Dot(0).Velocity.IsZero() {
		t.Error("held dot lost its velocity")
	}

	// Released: the dot moves on its own again
	s.PointerUp()
	s.Step()
	if s.Dot(0).Position == components.V(50, 50) {
		t.Error("released dot still pinned to the pointer")
	}
}

func TestPointerUpStopsFastDot(t *testing.T) {
	tests := []struct {
		name        string
		velocity    components.Vec2
		wantStopped bool
	}{
		{"slow keeps velocity", components.V(5, 0), false},
		{"at threshold keeps velocity", components.V(100, 0), false},
		{"fast is stopped", components.V(200, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pointerState(t)
			s.PointerDown(screenAt(0, 0))
			s.Dot(0).Velocity = tt.velocity
			// An unselected fast dot is not affected by the release
			s.Dot(2).Velocity = components.V(500, 0)

			released, stopped := s.PointerUp()
			if !released {
				t.Fatal("expected a release")
			}
			if stopped != tt.wantStopped {
				t.Errorf("stopped = %v, want %v", stopped, tt.wantStopped)
			}
			if tt.wantStopped && !s.Dot(0).Velocity.IsZero() {
				t.Errorf("velocity = %v, want zero", s.Dot(0).Velocity)
			}
			if !tt.wantStopped && s.Dot(0).Velocity != tt.velocity {
				t.Errorf("velocity = %v, want %v", s.Dot(0).Velocity, tt.velocity)
			}
			if s.Dot(2).Velocity != components.V(500, 0) {
				t.Errorf("unselected dot velocity changed to %v", s.Dot(2).Velocity)
			}
			if selectedCount(s) != 0 {
				t.Errorf("%d dots still selected after release", selectedCount(s))
			}
		})
	}
}

func TestPointerUpWithoutSelection(t *testing.T) {
	s := pointerState(t)
	s.PointerDown(screenAt(-200, -200))
	if released, stopped := s.PointerUp(); released || stopped {
		t.Errorf("PointerUp = %v, %v, want false, false", released, stopped)
	}
}

func TestPointerRescale(t *testing.T) {
	s := pointerState(t)
	s.Resize(1600, 1200)

	s.PointerMove(components.V(800, 600))
	if s.Pointer.Position != components.V(0, 0) {
		t.Errorf("window center maps to %v, want origin", s.Pointer.Position)
	}

	s.PointerMove(components.V(1600, 0))
	if s.Pointer.Position != components.V(400, -300) {
		t.Errorf("top-right maps to %v, want (400, -300)", s.Pointer.Position)
	}
	if s.Pointer.Screen != components.V(1600, 0) {
		t.Errorf("raw position = %v, want (1600, 0)", s.Pointer.Screen)
	}

	// Distances use simulation space: dot 1 is 10 units from the origin
	s.PointerMove(components.V(800, 600))
	if !approx(s.Dot(1).CursorDist, 10, 1e-5) {
		t.Errorf("cursor distance = %v, want 10", s.Dot(1).CursorDist)
	}
}

func TestPointerDelta(t *testing.T) {
	s := pointerState(t)
	s.Resize(1600, 1200)

	s.PointerMove(components.V(10, 10))
	if !s.Pointer.Delta.IsZero() {
		t.Errorf("delta while up = %v, want zero", s.Pointer.Delta)
	}

	s.PointerDown(components.V(800, 600))
	s.PointerMove(components.V(820, 610))
	if s.Pointer.Delta != components.V(10, 5) {
		t.Errorf("delta = %v, want (10, 5)", s.Pointer.Delta)
	}

	s.PointerUp()
	if !s.Pointer.Delta.IsZero() {
		t.Errorf("delta after release = %v, want zero", s.Pointer.Delta)
	}
}

func TestSelectionInvariantUnderRandomEvents(t *testing.T) {
	s := newTestState(t, func(cfg *config.Config) { cfg.Dots.Count = 40 })
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 2000; i++ {
		p := components.V(rng.Float32()*800, rng.Float32()*600)
		switch rng.Intn(4) {
		case 0:
			s.PointerDown(p)
		case 1:
			s.PointerMove(p)
		case 2:
			s.PointerUp()
		case 3:
			s.Step()
		}
		if n := selectedCount(s); n > 1 {
			t.Fatalf("event %d: %d dots selected", i, n)
		}
	}
}
