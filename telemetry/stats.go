package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	UptimeSec        float64 `csv:"uptime"`

	DotCount int `csv:"dots"`

	// Interaction events during window
	Grabs        int `csv:"grabs"`
	Releases     int `csv:"releases"`
	Flings       int `csv:"flings"` // releases above the speed threshold
	WallContacts int `csv:"wall_contacts"`

	// Density distribution (sampled at window end)
	DensityMean float64 `csv:"density_mean"`
	DensityStd  float64 `csv:"density_std"`
	DensityP10  float64 `csv:"density_p10"`
	DensityP50  float64 `csv:"density_p50"`
	DensityP90  float64 `csv:"density_p90"`
	DensityCV   float64 `csv:"density_cv"` // std / mean; 0 when mean is 0

	// Motion (sampled at window end)
	SpeedMean     float64 `csv:"speed_mean"`
	SpeedMax      float64 `csv:"speed_max"`
	KineticEnergy float64 `csv:"kinetic_energy"`
	Selected      int     `csv:"selected"`

	// Parameters in effect at window end
	TargetDensity      float64 `csv:"target_density"`
	PressureMultiplier float64 `csv:"pressure_multiplier"`
	SpeedScale         float64 `csv:"speed_scale"`
	ForceScale         float64 `csv:"force_scale"`
	Zoom               float64 `csv:"zoom"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeStats calculates mean, sample standard deviation, percentiles and max.
// Empty input yields the zero Distribution; a single value has zero spread.
func ComputeStats(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	var d Distribution
	if n == 1 {
		d.Mean = values[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(values, nil)
	}
	d.Max = floats.Max(values)

	// Sort for percentiles
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d.P10 = Percentile(sorted, 0.10)
	d.P50 = Percentile(sorted, 0.50)
	d.P90 = Percentile(sorted, 0.90)

	return d
}

// CoefficientOfVariation returns std / mean, or 0 when the mean is 0.
func (d Distribution) CoefficientOfVariation() float64 {
	if d.Mean == 0 {
		return 0
	}
	return d.Std / d.Mean
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("uptime", s.UptimeSec),
		slog.Int("dots", s.DotCount),
		slog.Int("grabs", s.Grabs),
		slog.Int("releases", s.Releases),
		slog.Int("flings", s.Flings),
		slog.Int("wall_contacts", s.WallContacts),
		slog.Float64("density_mean", s.DensityMean),
		slog.Float64("density_std", s.DensityStd),
		slog.Float64("density_p10", s.DensityP10),
		slog.Float64("density_p50", s.DensityP50),
		slog.Float64("density_p90", s.DensityP90),
		slog.Float64("density_cv", s.DensityCV),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Int("selected", s.Selected),
		slog.Float64("target_density", s.TargetDensity),
		slog.Float64("pressure_multiplier", s.PressureMultiplier),
		slog.Float64("speed_scale", s.SpeedScale),
		slog.Float64("force_scale", s.ForceScale),
		slog.Float64("zoom", s.Zoom),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"uptime", s.UptimeSec,
		"dots", s.DotCount,
		"grabs", s.Grabs,
		"releases", s.Releases,
		"flings", s.Flings,
		"wall_contacts", s.WallContacts,
		"density_mean", s.DensityMean,
		"density_std", s.DensityStd,
		"density_p50", s.DensityP50,
		"density_cv", s.DensityCV,
		"speed_mean", s.SpeedMean,
		"speed_max", s.SpeedMax,
		"kinetic_energy", s.KineticEnergy,
		"selected", s.Selected,
		"target_density", s.TargetDensity,
		"pressure_multiplier", s.PressureMultiplier,
		"speed_scale", s.SpeedScale,
		"force_scale", s.ForceScale,
		"zoom", s.Zoom,
	)
}
