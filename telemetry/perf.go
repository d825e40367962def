package telemetry

import (
	"log/slog"
	"time"
)

// Step phases, in the order sim.State.Step reports them through OnPhase.
// PhaseTelemetry is started by the game loop after Step returns, while
// window stats and CSV rows are flushed.
const (
	PhaseInteraction = "interaction" // cursor distances
	PhaseDensity     = "density"     // snapshot and pairwise density sums
	PhasePressure    = "pressure"    // pairwise pressure forces
	PhaseIntegrate   = "integrate"   // forces, Euler step, wall reflection
	PhaseTelemetry   = "telemetry"
)

const numPhases = 5

// Phases lists the step phases in execution order.
var Phases = [numPhases]string{
	PhaseInteraction, PhaseDensity, PhasePressure, PhaseIntegrate, PhaseTelemetry,
}

func phaseSlot(name string) int {
	for i, p := range Phases {
		if p == name {
			return i
		}
	}
	return -1
}

// frameTiming is the wall time of one frame split by phase.
type frameTiming struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times simulation frames over a ring of the most recent
// window frames. StartPhase has the signature of sim.State.OnPhase; each
// phase runs until the next one starts or the frame ends. Names outside
// Phases are not timed but still close the running phase.
type PerfCollector struct {
	ring   []frameTiming
	next   int
	filled int

	cur        frameTiming
	frameStart time.Time
	phaseStart time.Time
	running    int // slot of the running phase, -1 for none

	now func() time.Time
}

// NewPerfCollector returns a collector averaging over window frames.
// A non-positive window falls back to one second at 60 fps.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		ring:    make([]frameTiming, window),
		running: -1,
		now:     time.Now,
	}
}

// StartFrame begins timing one simulation frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = p.now()
	p.cur = frameTiming{}
	p.running = -1
}

// StartPhase closes the running phase and starts timing name.
func (p *PerfCollector) StartPhase(name string) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.running = phaseSlot(name)
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.running >= 0 {
		p.cur.phases[p.running] += now.Sub(p.phaseStart)
	}
	p.running = -1
}

// EndFrame closes the running phase and stores the frame in the ring.
func (p *PerfCollector) EndFrame() {
	now := p.now()
	p.closePhase(now)
	p.cur.total = now.Sub(p.frameStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

// PerfStats summarises the frames in the window. Percentages are shares of
// the mean frame time; with many dots the density and pressure passes, being
// quadratic in the dot count, take most of it.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration

	PhaseAvg map[string]time.Duration // mean time per phase
	PhasePct map[string]float64       // share of AvgFrame, 0..100

	// Engine-only rate; rendering is outside the timed frame.
	FramesPerSecond float64
}

// Stats aggregates the frames currently in the window. Phases that never
// ran are absent from the maps.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.filled == 0 {
		return stats
	}

	var total time.Duration
	var phaseTotal [numPhases]time.Duration
	for i, f := range p.ring[:p.filled] {
		total += f.total
		if i == 0 || f.total < stats.MinFrame {
			stats.MinFrame = f.total
		}
		stats.MaxFrame = max(stats.MaxFrame, f.total)
		for j, d := range f.phases {
			phaseTotal[j] += d
		}
	}

	n := time.Duration(p.filled)
	stats.AvgFrame = total / n
	for j, sum := range phaseTotal {
		if sum == 0 {
			continue
		}
		avg := sum / n
		stats.PhaseAvg[Phases[j]] = avg
		if stats.AvgFrame > 0 {
			stats.PhasePct[Phases[j]] = float64(avg) / float64(stats.AvgFrame) * 100
		}
	}
	if stats.AvgFrame > 0 {
		stats.FramesPerSecond = float64(time.Second) / float64(stats.AvgFrame)
	}
	return stats
}

// LogStats emits one "perf" record: frame times in microseconds and each
// phase's share rounded to a tenth of a percent. Phases under 0.1% are left out.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrame.Microseconds(),
		"min_frame_us", s.MinFrame.Microseconds(),
		"max_frame_us", s.MaxFrame.Microseconds(),
		"frames_per_sec", int(s.FramesPerSecond),
	}
	for _, phase := range Phases {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue groups the stats when they are passed as a single slog attribute.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Float64("frames_per_sec", s.FramesPerSecond),
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd      int32   `csv:"window_end"`
	AvgStepUS      int64   `csv:"avg_step_us"`
	MinStepUS      int64   `csv:"min_step_us"`
	MaxStepUS      int64   `csv:"max_step_us"`
	StepsPerSec    float64 `csv:"steps_per_sec"`
	FPS            float64 `csv:"fps"`
	InteractionPct float64 `csv:"interaction_pct"`
	DensityPct     float64 `csv:"density_pct"`
	PressurePct    float64 `csv:"pressure_pct"`
	IntegratePct   float64 `csv:"integrate_pct"`
	TelemetryPct   float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row ending at frame windowEnd.
// fps is the rendered rate from the frame clock, zero in headless runs.
func (s PerfStats) ToCSV(windowEnd int32, fps float64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		AvgStepUS:      s.AvgFrame.Microseconds(),
		MinStepUS:      s.MinFrame.Microseconds(),
		MaxStepUS:      s.MaxFrame.Microseconds(),
		StepsPerSec:    s.FramesPerSecond,
		FPS:            fps,
		InteractionPct: s.PhasePct[PhaseInteraction],
		DensityPct:     s.PhasePct[PhaseDensity],
		PressurePct:    s.PhasePct[PhasePressure],
		IntegratePct:   s.PhasePct[PhaseIntegrate],
		TelemetryPct:   s.PhasePct[PhaseTelemetry],
	}
}
