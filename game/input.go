package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gushy/components"
)

// handleInput applies keyboard, wheel and pointer input to the state.
// It runs between frames, never during a step.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyQ) {
		g.quit = true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	s := g.state
	if rl.IsKeyPressed(rl.KeyUp) {
		s.NudgeSpeedScale(1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		s.NudgeSpeedScale(-1)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		s.NudgeForceScale(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		s.NudgeForceScale(-1)
	}

	// Held keys sweep the fluid targets
	if rl.IsKeyDown(rl.KeyW) {
		s.NudgeTargetDensity(1)
	}
	if rl.IsKeyDown(rl.KeyS) {
		s.NudgeTargetDensity(-1)
	}
	if rl.IsKeyDown(rl.KeyD) {
		s.NudgePressureMultiplier(1)
	}
	if rl.IsKeyDown(rl.KeyA) {
		s.NudgePressureMultiplier(-1)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.ZoomBy(wheel)
	}

	g.handlePointer()
}

// handlePointer forwards mouse button and movement events to the state.
func (g *Game) handlePointer() {
	pos := rl.GetMousePosition()
	screen := components.V(pos.X, pos.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		if g.controls.Contains(pos.X, pos.Y, int32(g.screenWidth)) {
			return
		}
		if g.state.PointerDown(screen) {
			g.collector.RecordGrab()
		}
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		if !g.state.Pointer.Down {
			return
		}
		if released, stopped := g.state.PointerUp(); released {
			g.collector.RecordRelease(stopped)
		}
	case screen != g.state.Pointer.Screen:
		g.state.PointerMove(screen)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.state.Resize(w, h)
}
