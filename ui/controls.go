package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gushy/sim"
)

// ControlsPanel renders the right-side parameter panel: sliders for the
// mutable parameters and toggles for the force contributors.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a window position falls on the visible panel.
// Pointer presses there belong to the panel, not the swarm.
func (c *ControlsPanel) Contains(x, y float32, screenW int32) bool {
	if !c.visible {
		return false
	}
	return x >= float32(screenW-c.width)
}

// Draw renders the panel and applies any slider or button changes to s
// through its clamping setters.
func (c *ControlsPanel) Draw(s *sim.State, screenW, screenH int32) {
	if !c.visible {
		return
	}

	r := c.renderer
	pad := r.Theme.Padding
	x := screenW - c.width
	r.DrawPanel(x, 0, c.width, screenH)

	px := float32(x + pad)
	sliderW := float32(c.width - 2*pad - 60)
	y := r.DrawSectionHeader(x+pad, pad, "Parameters")

	lim := s.Limits()
	p := s.Params

	slider := func(label string, value float32, lo, hi float64, format string) float32 {
		rl.DrawText(label, int32(px), y, r.Theme.FontSize, r.Theme.LabelColor)
		y += r.Theme.LineHeight
		v := gui.SliderBar(
			rl.Rectangle{X: px, Y: float32(y), Width: sliderW, Height: 18},
			"", "",
			value, float32(lo), float32(hi),
		)
		rl.DrawText(fmt.Sprintf(format, value), int32(px+sliderW+8), y+2, r.Theme.FontSize, r.Theme.ValueColor)
		y += 28
		return v
	}

	if v := slider("Target density", p.TargetDensity, lim.TargetDensity.Min, lim.TargetDensity.Max, "%.3f"); v != p.TargetDensity {
		s.SetTargetDensity(v)
	}
	if v := slider("Pressure multiplier", p.PressureMultiplier, lim.PressureMultiplier.Min, lim.PressureMultiplier.Max, "%.1f"); v != p.PressureMultiplier {
		s.SetPressureMultiplier(v)
	}
	if v := slider("Speed scale", p.SpeedScale, lim.SpeedScale.Min, lim.SpeedScale.Max, "%.2f"); v != p.SpeedScale {
		s.SetSpeedScale(v)
	}
	if v := slider("Force scale", p.ForceScale, lim.ForceScale.Min, lim.ForceScale.Max, "%.2f"); v != p.ForceScale {
		s.SetForceScale(v)
	}
	if v := slider("Zoom", p.Zoom, lim.Zoom.Min, lim.Zoom.Max, "%.1f"); v != p.Zoom {
		s.SetZoom(v)
	}

	y += 6
	y = r.DrawSectionHeader(x+pad, y, "Forces")

	centripetal, centerRep, particleRep := s.Forces()
	btnW := float32(c.width - 2*pad)
	button := func(label string, on bool) bool {
		clicked := gui.Button(rl.Rectangle{X: px, Y: float32(y), Width: btnW, Height: 26}, toggleText(on, label+": on", label+": off"))
		y += 32
		return clicked
	}

	if button("Centripetal", centripetal) {
		centripetal = !centripetal
	}
	if button("Center repulsion", centerRep) {
		centerRep = !centerRep
	}
	if button("Particle repulsion", particleRep) {
		particleRep = !particleRep
	}
	s.SetForces(centripetal, centerRep, particleRep)

	if button("Grab dots", s.Interactive()) {
		s.SetInteractive(!s.Interactive())
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
