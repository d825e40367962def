package sim

import "github.com/pthm-cable/gushy/components"

// toWorld rescales a window-pixel position into simulation space.
func (s *State) toWorld(screen components.Vec2) components.Vec2 {
	x, y := s.view.ScreenToWorld(screen.X, screen.Y)
	return components.V(x, y)
}

// movePointer records a new pointer position in both spaces.
func (s *State) movePointer(screen components.Vec2) {
	s.Pointer.Screen = screen
	s.Pointer.Position = s.toWorld(screen)
}

// UpdateCursorDistances recomputes every dot's distance to the pointer.
func (s *State) UpdateCursorDistances() {
	query := s.dots.filter.Query()
	for query.Next() {
		d := query.Get()
		d.CursorDist = d.Position.DistanceTo(s.Pointer.Position)
	}
}

// Nearest returns the index of the dot closest to the pointer and strictly
// inside the pick radius, or -1 when none is. Uses the cached cursor distances.
func (s *State) Nearest() int {
	best := -1
	var bestDist float32
	for i := range s.dots.entities {
		dist := s.Dot(i).CursorDist
		if dist >= s.pickRadius {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// Selected returns the index of the selected dot, or -1.
func (s *State) Selected() int {
	for i := range s.dots.entities {
		if s.Dot(i).Selected {
			return i
		}
	}
	return -1
}

// PointerDown handles a button press at a window-pixel position.
// The nearest dot within the pick radius becomes the only selected dot and
// its color becomes the focus color. With nothing in range no selection
// changes. Reports whether a dot was picked.
func (s *State) PointerDown(screen components.Vec2) bool {
	s.movePointer(screen)
	s.Pointer.Down = true
	s.Pointer.Delta = components.Vec2{}
	s.Pointer.lastScreen = screen
	s.Pointer.hasLast = true
	s.UpdateCursorDistances()

	if !s.interactive {
		return false
	}
	i := s.Nearest()
	if i < 0 {
		return false
	}

	s.clearSelection()
	d := s.Dot(i)
	d.Selected = true
	s.FocusColor = d.Color
	s.HasFocus = true
	return true
}

// PointerMove handles pointer motion to a window-pixel position.
// A held dot follows the pointer immediately.
func (s *State) PointerMove(screen components.Vec2) {
	s.movePointer(screen)
	s.UpdateCursorDistances()

	if !s.Pointer.Down {
		return
	}
	if s.Pointer.hasLast {
		dx, dy := s.view.ScreenDeltaToWorld(screen.X-s.Pointer.lastScreen.X, screen.Y-s.Pointer.lastScreen.Y)
		s.Pointer.Delta = components.V(dx, dy)
	}
	s.Pointer.lastScreen = screen
	s.Pointer.hasLast = true

	if i := s.Selected(); i >= 0 {
		s.Dot(i).Position = s.Pointer.Position
	}
}

// PointerUp handles a button release. Every selection is cleared; the
// released dot keeps its velocity unless it exceeds the release threshold,
// in which case it is stopped. Reports whether a dot was released and
// whether it was stopped.
func (s *State) PointerUp() (released, stopped bool) {
	s.Pointer.Down = false
	s.Pointer.Delta = components.Vec2{}
	s.Pointer.hasLast = false

	query := s.dots.filter.Query()
	for query.Next() {
		d := query.Get()
		if !d.Selected {
			continue
		}
		d.Selected = false
		released = true
		if d.Speed() > s.releaseThreshold {
			d.Velocity = components.Vec2{}
			stopped = true
		}
	}
	return released, stopped
}

func (s *State) clearSelection() {
	query := s.dots.filter.Query()
	for query.Next() {
		query.Get().Selected = false
	}
}
