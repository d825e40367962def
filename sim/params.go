package sim

import (
	"math"

	"github.com/pthm-cable/gushy/config"
)

// clampTo restricts v to r. NaN keeps the current value.
func clampTo(v, current float32, r config.Range) float32 {
	if math.IsNaN(float64(v)) {
		return current
	}
	return float32(math.Min(math.Max(float64(v), r.Min), r.Max))
}

// SetTargetDensity sets the density at which pressure vanishes.
func (s *State) SetTargetDensity(v float32) {
	s.Params.TargetDensity = clampTo(v, s.Params.TargetDensity, s.limits.TargetDensity)
}

// SetPressureMultiplier sets the pressure stiffness.
func (s *State) SetPressureMultiplier(v float32) {
	s.Params.PressureMultiplier = clampTo(v, s.Params.PressureMultiplier, s.limits.PressureMultiplier)
}

// SetSpeedScale sets the integration step multiplier. It never drops below
// the configured minimum, so the swarm cannot freeze or run backwards.
func (s *State) SetSpeedScale(v float32) {
	s.Params.SpeedScale = clampTo(v, s.Params.SpeedScale, s.limits.SpeedScale)
}

// SetForceScale sets the multiplier on pressure, ambient and centripetal forces.
func (s *State) SetForceScale(v float32) {
	s.Params.ForceScale = clampTo(v, s.Params.ForceScale, s.limits.ForceScale)
}

// SetZoom sets the zoom, which sizes dots and the pairwise repulsion range.
func (s *State) SetZoom(v float32) {
	s.Params.Zoom = clampTo(v, s.Params.Zoom, s.limits.Zoom)
}

// NudgeTargetDensity moves the target density by steps key increments.
func (s *State) NudgeTargetDensity(steps int) {
	s.SetTargetDensity(s.Params.TargetDensity + float32(steps)*float32(s.limits.TargetDensity.Step))
}

// NudgePressureMultiplier moves the pressure multiplier by steps key increments.
func (s *State) NudgePressureMultiplier(steps int) {
	s.SetPressureMultiplier(s.Params.PressureMultiplier + float32(steps)*float32(s.limits.PressureMultiplier.Step))
}

// NudgeSpeedScale moves the speed scale by steps key increments.
func (s *State) NudgeSpeedScale(steps int) {
	s.SetSpeedScale(s.Params.SpeedScale + float32(steps)*float32(s.limits.SpeedScale.Step))
}

// NudgeForceScale moves the force scale by steps key increments.
func (s *State) NudgeForceScale(steps int) {
	s.SetForceScale(s.Params.ForceScale + float32(steps)*float32(s.limits.ForceScale.Step))
}

// ZoomBy applies scroll input: zoom is multiplied by 1 + factor·lines.
func (s *State) ZoomBy(lines float32) {
	s.SetZoom(s.Params.Zoom * (1 + float32(s.limits.ScrollZoomFactor)*lines))
}

// Limits returns the configured parameter ranges.
func (s *State) Limits() config.LimitsConfig {
	return s.limits
}
