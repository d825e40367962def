package sim

import (
	"github.com/pthm-cable/gushy/systems"
	"github.com/pthm-cable/gushy/telemetry"
)

// Step advances the swarm by one frame.
//
// The dots are copied out of the world into a read-only snapshot; densities
// and pressure forces are computed from it. Forces, integration and wall
// reflection are then written back to each dot's entity. A selected dot is
// pinned to the pointer while it is held.
func (s *State) Step() {
	s.phase(telemetry.PhaseInteraction)
	s.UpdateCursorDistances()

	s.phase(telemetry.PhaseDensity)
	snapshot := s.dots.collect()
	densities := systems.ComputeDensities(snapshot, s.fluid.Radius, s.fluid.Mass, s.par)
	for i, d := range densities {
		snapshot[i].Density = d
	}

	s.phase(telemetry.PhasePressure)
	fluid := s.fluid
	fluid.TargetDensity = s.Params.TargetDensity
	fluid.PressureMultiplier = s.Params.PressureMultiplier
	pressure := systems.PressureForces(snapshot, densities, fluid, s.par)

	s.phase(telemetry.PhaseIntegrate)
	scales := systems.Scales{
		Speed: s.Params.SpeedScale,
		Force: s.Params.ForceScale,
		Zoom:  s.Params.Zoom,
	}
	s.WallContacts = 0
	for i, e := range s.dots.order {
		d := s.dots.mapper.Get(e)
		d.Density = densities[i]
		ambient := s.forces.AmbientBias.Add(s.drift.At(d.Position, s.Frame))
		systems.ApplyForces(d, pressure[i], ambient, snapshot, s.forces, scales)
		systems.Integrate(d, scales.Speed)
		if systems.ReflectBounds(d, s.bounds) {
			s.WallContacts++
		}
		if d.Selected && s.Pointer.Down {
			d.Position = s.Pointer.Position
		}
	}

	s.Frame++
}

func (s *State) phase(name string) {
	if s.OnPhase != nil {
		s.OnPhase(name)
	}
}
