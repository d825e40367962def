package telemetry

// ParamSample is the runtime parameter bag at the moment of a flush.
type ParamSample struct {
	TargetDensity      float64
	PressureMultiplier float64
	SpeedScale         float64
	ForceScale         float64
	Zoom               float64
}

// SwarmSample is the per-dot state sampled at window end.
type SwarmSample struct {
	Densities []float64
	Speeds    []float64
	Selected  int
	Params    ParamSample
}

// Collector accumulates interaction events within frame windows and produces WindowStats.
type Collector struct {
	windowFrames int32
	mass         float64

	// Current window tracking
	windowStartFrame int32

	// Event counters for current window
	grabs        int
	releases     int
	flings       int
	wallContacts int
}

// NewCollector creates a new stats collector.
// windowFrames: how many frames each stats window lasts
// mass: per-dot mass used for the kinetic energy total
func NewCollector(windowFrames int, mass float64) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames: int32(windowFrames),
		mass:         mass,
	}
}

// RecordGrab records a dot being picked by the pointer.
func (c *Collector) RecordGrab() {
	c.grabs++
}

// RecordRelease records a pointer release; flung is true when the released
// dot was over the speed threshold and had its velocity zeroed.
func (c *Collector) RecordRelease(flung bool) {
	c.releases++
	if flung {
		c.flings++
	}
}

// RecordWallContacts adds the boundary reflections of one step.
func (c *Collector) RecordWallContacts(n int) {
	c.wallContacts += n
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int32) bool {
	return currentFrame-c.windowStartFrame >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
// uptimeSec is wall-clock time since start, from the frame clock.
func (c *Collector) Flush(currentFrame int32, uptimeSec float64, sample SwarmSample) WindowStats {
	density := ComputeStats(sample.Densities)
	speed := ComputeStats(sample.Speeds)

	var sumSq float64
	for _, v := range sample.Speeds {
		sumSq += v * v
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		UptimeSec:        uptimeSec,

		DotCount: len(sample.Densities),

		Grabs:        c.grabs,
		Releases:     c.releases,
		Flings:       c.flings,
		WallContacts: c.wallContacts,

		DensityMean: density.Mean,
		DensityStd:  density.Std,
		DensityP10:  density.P10,
		DensityP50:  density.P50,
		DensityP90:  density.P90,
		DensityCV:   density.CoefficientOfVariation(),

		SpeedMean:     speed.Mean,
		SpeedMax:      speed.Max,
		KineticEnergy: 0.5 * c.mass * sumSq,
		Selected:      sample.Selected,

		TargetDensity:      sample.Params.TargetDensity,
		PressureMultiplier: sample.Params.PressureMultiplier,
		SpeedScale:         sample.Params.SpeedScale,
		ForceScale:         sample.Params.ForceScale,
		Zoom:               sample.Params.Zoom,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.grabs = 0
	c.releases = 0
	c.flings = 0
	c.wallContacts = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int32 {
	return c.windowFrames
}
