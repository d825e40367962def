// Package sim owns the swarm state and advances it one frame at a time.
//
// A State is driven from a single goroutine: input handlers call the
// parameter mutators and pointer entry points between frames, then Step
// advances every dot. Nothing in this package blocks or logs.
package sim

import (
	"math/rand"

	"github.com/pthm-cable/gushy/camera"
	"github.com/pthm-cable/gushy/components"
	"github.com/pthm-cable/gushy/config"
	"github.com/pthm-cable/gushy/systems"
)

// Params are the free parameters mutated by input handling between frames.
// Step treats them as read-only.
type Params struct {
	TargetDensity      float32
	PressureMultiplier float32
	SpeedScale         float32
	ForceScale         float32
	Zoom               float32
}

// Pointer is the last known pointer state.
type Pointer struct {
	Down     bool
	Screen   components.Vec2 // window pixels
	Position components.Vec2 // simulation space
	Delta    components.Vec2 // simulation-space movement since the last move while down

	lastScreen components.Vec2
	hasLast    bool
}

// State is the complete simulation: parameters, dots, pointer and arena.
// Dots are reached through Len, Dot and Dots.
type State struct {
	Params  Params
	Pointer Pointer

	// FocusColor is the color of the most recently picked dot.
	FocusColor components.Color
	HasFocus   bool

	Frame        uint64
	WallContacts int // boundary reflections during the last Step

	// OnPhase, if set, is called at the start of each step phase.
	OnPhase func(phase string)

	seed   int64
	fluid  systems.FluidParams
	forces systems.ForceParams
	bounds systems.Bounds
	par    systems.Parallelism
	drift  *systems.DriftField

	interactive      bool
	pickRadius       float32
	releaseThreshold float32

	limits config.LimitsConfig
	view   *camera.Camera

	dots dotWorld
}

// NewState builds a state from cfg with dots generated from seed.
// The initial scales and fluid targets are clamped into their limits; a
// value that cannot be clamped leaves the limit's minimum in place.
func NewState(cfg *config.Config, seed int64) *State {
	rng := rand.New(rand.NewSource(seed))

	s := &State{
		seed: seed,
		fluid: systems.FluidParams{
			Radius:  float32(cfg.Fluid.SmoothingRadius),
			Mass:    float32(cfg.Fluid.Mass),
			Epsilon: float32(cfg.Fluid.Epsilon),
		},
		forces: forceParams(cfg.Forces, float32(cfg.Fluid.Epsilon)),
		bounds: systems.Bounds{
			HalfW:   cfg.Derived.BoundX,
			HalfH:   cfg.Derived.BoundY,
			Nudge:   float32(cfg.Arena.Nudge),
			Damping: float32(cfg.Arena.Damping),
		},
		par: systems.Parallelism{
			Enabled:   cfg.Fluid.Parallel,
			Threshold: cfg.Fluid.ParallelThreshold,
		},
		interactive:      cfg.Interaction.Enabled,
		pickRadius:       float32(cfg.Interaction.PickRadius),
		releaseThreshold: float32(cfg.Interaction.ReleaseSpeedThreshold),
		limits:           cfg.Limits,
		view:             camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.ArenaW32, cfg.Derived.ArenaH32),
		Params: Params{
			TargetDensity:      float32(cfg.Limits.TargetDensity.Min),
			PressureMultiplier: float32(cfg.Limits.PressureMultiplier.Min),
			SpeedScale:         float32(cfg.Limits.SpeedScale.Min),
			ForceScale:         float32(cfg.Limits.ForceScale.Min),
			Zoom:               float32(cfg.Limits.Zoom.Min),
		},
	}

	if cfg.Forces.Drift {
		s.drift = systems.NewDriftField(seed,
			float32(cfg.Forces.DriftStrength),
			float32(cfg.Forces.DriftScale),
			float32(cfg.Forces.DriftSpeed))
	}

	s.SetTargetDensity(float32(cfg.Fluid.TargetDensity))
	s.SetPressureMultiplier(float32(cfg.Fluid.PressureMultiplier))
	s.SetSpeedScale(float32(cfg.Scales.SpeedScale))
	s.SetForceScale(float32(cfg.Scales.ForceScale))
	s.SetZoom(float32(cfg.Scales.Zoom))

	s.dots = newDotWorld(GenerateDots(rng, cfg.Dots, s.bounds))
	return s
}

func forceParams(fc config.ForcesConfig, eps float32) systems.ForceParams {
	return systems.ForceParams{
		Centripetal:             fc.Centripetal,
		CenterRepulsion:         fc.CenterRepulsion,
		ParticleRepulsion:       fc.ParticleRepulsion,
		CircularStrength:        float32(fc.CircularStrength),
		CountConstant:           float32(fc.CountConstant),
		RepulsiveStrength:       float32(fc.RepulsiveStrength),
		CenterRepulsiveRadius:   float32(fc.CenterRepulsiveRadius),
		CenterPerturbation:      components.V(float32(fc.CenterPerturbation[0]), float32(fc.CenterPerturbation[1])),
		ParticleRepulsiveRadius: float32(fc.ParticleRepulsiveRadius),
		ZoomRadiusFactor:        float32(fc.ZoomRadiusFactor),
		AmbientBias:             components.V(float32(fc.AmbientBias[0]), float32(fc.AmbientBias[1])),
		Epsilon:                 eps,
	}
}

// Seed returns the seed the dots were generated from.
func (s *State) Seed() int64 {
	return s.seed
}

// Bounds returns the arena walls.
func (s *State) Bounds() systems.Bounds {
	return s.bounds
}

// Camera returns the window mapping used for pointer input.
func (s *State) Camera() *camera.Camera {
	return s.view
}

// Resize updates the window size used to rescale pointer input.
// The arena itself does not change.
func (s *State) Resize(width, height float32) {
	s.view.Resize(width, height)
}

// Forces returns the enabled state of each optional contributor.
func (s *State) Forces() (centripetal, centerRepulsion, particleRepulsion bool) {
	return s.forces.Centripetal, s.forces.CenterRepulsion, s.forces.ParticleRepulsion
}

// SetForces switches the optional contributors on or off.
// With all three off only pressure and the ambient bias act on the dots.
func (s *State) SetForces(centripetal, centerRepulsion, particleRepulsion bool) {
	s.forces.Centripetal = centripetal
	s.forces.CenterRepulsion = centerRepulsion
	s.forces.ParticleRepulsion = particleRepulsion
}

// Interactive reports whether pointer selection is enabled.
func (s *State) Interactive() bool {
	return s.interactive
}

// SetInteractive enables or disables pointer selection. Disabling releases
// any selected dot.
func (s *State) SetInteractive(on bool) {
	s.interactive = on
	if !on {
		s.clearSelection()
	}
}
