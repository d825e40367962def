package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/gushy/config"
	"github.com/pthm-cable/gushy/sim"
	"github.com/pthm-cable/gushy/telemetry"
)

// Fitness returned for runs that blow up or produce no usable window.
const failedFitness = 1e6

// FitnessEvaluator runs headless simulations and scores how evenly the
// swarm settles at its target density.
type FitnessEvaluator struct {
	params        *ParamVector
	frames        int
	warmupWindows int
	seeds         []int64
	baseConfig    *config.Config

	mu     sync.Mutex
	lastCV float64 // mean density CV from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, frames, warmupWindows int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:        params,
		frames:        frames,
		warmupWindows: warmupWindows,
		seeds:         seeds,
		baseConfig:    baseCfg,
	}
}

// LastCV returns the mean density coefficient of variation from the most
// recent evaluation.
func (fe *FitnessEvaluator) LastCV() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastCV
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	cv      float64
}

// Evaluate computes fitness for a raw parameter vector (lower = better),
// averaged over all seeds. Seeds run in parallel.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			windows := fe.runSimulation(cfg, s)
			f, cv := scoreWindows(windows, fe.warmupWindows, cfg.Fluid.TargetDensity)
			results[idx] = seedResult{fitness: f, cv: cv}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalCV float64
	for _, r := range results {
		totalFitness += r.fitness
		totalCV += r.cv
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastCV = totalCV / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation runs one seed for the configured number of frames and
// returns every stats window it produced. Pointer input never happens.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) []telemetry.WindowStats {
	state := sim.NewState(cfg, seed)
	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Fluid.Mass)

	var windows []telemetry.WindowStats
	for i := 0; i < fe.frames; i++ {
		state.Step()
		collector.RecordWallContacts(state.WallContacts)

		frame := int32(state.Frame)
		if collector.ShouldFlush(frame) {
			windows = append(windows, collector.Flush(frame, 0, state.Sample()))
		}
	}
	return windows
}

// copyConfig returns a copy of the base config that evaluations can edit.
// Config holds only value fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// scoreWindows turns the stats windows of one run into a fitness.
// The score is the mean density coefficient of variation plus the relative
// miss between the mean density and the target, so a swarm that spreads
// out until no dot sees a neighbour does not score as perfectly even.
// Windows before warmup are skipped. Returns the fitness and the mean CV.
func scoreWindows(windows []telemetry.WindowStats, warmup int, target float64) (fitness, cv float64) {
	if warmup >= len(windows) {
		return failedFitness, math.NaN()
	}

	var sumCV, sumMiss float64
	counted := 0
	for _, w := range windows[warmup:] {
		if math.IsNaN(w.DensityCV) || math.IsInf(w.DensityCV, 0) || math.IsNaN(w.DensityMean) {
			return failedFitness, math.NaN()
		}
		sumCV += w.DensityCV
		if target > 0 {
			sumMiss += math.Abs(w.DensityMean-target) / target
		}
		counted++
	}

	cv = sumCV / float64(counted)
	return cv + sumMiss/float64(counted), cv
}
