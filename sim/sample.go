package sim

import (
	"github.com/pthm-cable/gushy/telemetry"
)

// Sample collects the per-dot values the stats collector aggregates.
func (s *State) Sample() telemetry.SwarmSample {
	sample := telemetry.SwarmSample{
		Densities: make([]float64, 0, s.Len()),
		Speeds:    make([]float64, 0, s.Len()),
		Params: telemetry.ParamSample{
			TargetDensity:      float64(s.Params.TargetDensity),
			PressureMultiplier: float64(s.Params.PressureMultiplier),
			SpeedScale:         float64(s.Params.SpeedScale),
			ForceScale:         float64(s.Params.ForceScale),
			Zoom:               float64(s.Params.Zoom),
		},
	}
	query := s.dots.filter.Query()
	for query.Next() {
		d := query.Get()
		sample.Densities = append(sample.Densities, float64(d.Density))
		sample.Speeds = append(sample.Speeds, float64(d.Speed()))
		if d.Selected {
			sample.Selected++
		}
	}
	return sample
}
