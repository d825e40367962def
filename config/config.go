// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Arena       ArenaConfig       `yaml:"arena"`
	Dots        DotsConfig        `yaml:"dots"`
	Fluid       FluidConfig       `yaml:"fluid"`
	Forces      ForcesConfig      `yaml:"forces"`
	Interaction InteractionConfig `yaml:"interaction"`
	Scales      ScalesConfig      `yaml:"scales"`
	Limits      LimitsConfig      `yaml:"limits"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig describes the fixed simulation frame.
// The arena is centered at the origin and does not follow window resizes.
type ArenaConfig struct {
	Width   float64 `yaml:"width"`   // reference frame width (pointer rescale target)
	Height  float64 `yaml:"height"`  // reference frame height
	Inset   float64 `yaml:"inset"`   // walls sit this far inside the frame edge
	Nudge   float64 `yaml:"nudge"`   // distance a reflected dot is moved back inside
	Damping float64 `yaml:"damping"` // velocity multiplier on wall contact, < 1
}

// DotsConfig holds initial swarm parameters.
type DotsConfig struct {
	Count       int     `yaml:"count"`
	Layout      string  `yaml:"layout"` // "ring" or "rect"
	OrbitRadius float64 `yaml:"orbit_radius"`
	BaseColor   [3]int  `yaml:"base_color"`
	ColorJitter int     `yaml:"color_jitter"`
}

// FluidConfig holds the density/pressure solver parameters.
type FluidConfig struct {
	SmoothingRadius    float64 `yaml:"smoothing_radius"`
	Mass               float64 `yaml:"mass"`
	TargetDensity      float64 `yaml:"target_density"`
	PressureMultiplier float64 `yaml:"pressure_multiplier"`
	Epsilon            float64 `yaml:"epsilon"`
	Parallel           bool    `yaml:"parallel"`
	ParallelThreshold  int     `yaml:"parallel_threshold"` // below this dot count, passes run serially
}

// ForcesConfig holds the optional force contributors and their tuning.
type ForcesConfig struct {
	Centripetal       bool `yaml:"centripetal"`
	CenterRepulsion   bool `yaml:"center_repulsion"`
	ParticleRepulsion bool `yaml:"particle_repulsion"`
	Drift             bool `yaml:"drift"`

	CircularStrength        float64    `yaml:"circular_strength"`
	CountConstant           float64    `yaml:"count_constant"` // k in k/n centripetal scaling
	RepulsiveStrength       float64    `yaml:"repulsive_strength"`
	CenterRepulsiveRadius   float64    `yaml:"center_repulsive_radius"`
	CenterPerturbation      [2]float64 `yaml:"center_perturbation"`
	ParticleRepulsiveRadius float64    `yaml:"particle_repulsive_radius"`
	ZoomRadiusFactor        float64    `yaml:"zoom_radius_factor"`
	AmbientBias             [2]float64 `yaml:"ambient_bias"`
	DriftStrength           float64    `yaml:"drift_strength"`
	DriftScale              float64    `yaml:"drift_scale"`
	DriftSpeed              float64    `yaml:"drift_speed"`
}

// InteractionConfig holds pointer interaction parameters.
type InteractionConfig struct {
	Enabled               bool    `yaml:"enabled"`
	PickRadius            float64 `yaml:"pick_radius"`
	ReleaseSpeedThreshold float64 `yaml:"release_speed_threshold"`
}

// ScalesConfig holds the initial values of the runtime-mutable scales.
type ScalesConfig struct {
	SpeedScale float64 `yaml:"speed_scale"`
	ForceScale float64 `yaml:"force_scale"`
	Zoom       float64 `yaml:"zoom"`
}

// Range is a closed interval a mutable parameter is clamped into.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"` // increment applied by one key press
}

// Contains reports whether v lies in the interval. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// LimitsConfig documents the safe range of every runtime-mutable parameter.
type LimitsConfig struct {
	TargetDensity      Range   `yaml:"target_density"`
	PressureMultiplier Range   `yaml:"pressure_multiplier"`
	SpeedScale         Range   `yaml:"speed_scale"`
	ForceScale         Range   `yaml:"force_scale"`
	Zoom               Range   `yaml:"zoom"`
	ScrollZoomFactor   float64 `yaml:"scroll_zoom_factor"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // frames per stats window
	PerfWindow  int `yaml:"perf_window"`  // frames averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	ArenaW32  float32 // Arena.Width as float32
	ArenaH32  float32 // Arena.Height as float32
	BoundX    float32 // wall x half-extent: Width/2 - Inset
	BoundY    float32 // wall y half-extent: Height/2 - Inset
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	if c.Dots.Count < 1 {
		return fmt.Errorf("dots.count must be positive, got %d", c.Dots.Count)
	}
	switch c.Dots.Layout {
	case "ring", "rect":
	default:
		return fmt.Errorf("dots.layout must be ring or rect, got %q", c.Dots.Layout)
	}
	if c.Fluid.SmoothingRadius <= 0 {
		return fmt.Errorf("fluid.smoothing_radius must be positive, got %v", c.Fluid.SmoothingRadius)
	}
	if c.Arena.Damping < 0 || c.Arena.Damping >= 1 {
		return fmt.Errorf("arena.damping must be in [0, 1), got %v", c.Arena.Damping)
	}
	if c.Arena.Width <= 2*c.Arena.Inset || c.Arena.Height <= 2*c.Arena.Inset {
		return fmt.Errorf("arena %vx%v too small for inset %v", c.Arena.Width, c.Arena.Height, c.Arena.Inset)
	}
	if c.Limits.SpeedScale.Min <= 0 || c.Limits.ForceScale.Min <= 0 {
		return fmt.Errorf("speed and force scale minimums must be positive")
	}

	initial := []struct {
		name  string
		value float64
		r     Range
	}{
		{"fluid.target_density", c.Fluid.TargetDensity, c.Limits.TargetDensity},
		{"fluid.pressure_multiplier", c.Fluid.PressureMultiplier, c.Limits.PressureMultiplier},
		{"scales.speed_scale", c.Scales.SpeedScale, c.Limits.SpeedScale},
		{"scales.force_scale", c.Scales.ForceScale, c.Limits.ForceScale},
		{"scales.zoom", c.Scales.Zoom, c.Limits.Zoom},
	}
	for _, p := range initial {
		if !p.r.Contains(p.value) {
			return fmt.Errorf("%s must be in [%v, %v], got %v", p.name, p.r.Min, p.r.Max, p.value)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ArenaW32 = float32(c.Arena.Width)
	c.Derived.ArenaH32 = float32(c.Arena.Height)
	c.Derived.BoundX = float32(c.Arena.Width/2 - c.Arena.Inset)
	c.Derived.BoundY = float32(c.Arena.Height/2 - c.Arena.Inset)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
