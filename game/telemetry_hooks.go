package game

import (
	"log/slog"
	"time"
)

// flushTelemetry closes the stats window when it is due and hands the
// result to the callback, the log and the CSV output.
func (g *Game) flushTelemetry() {
	frame := int32(g.state.Frame)
	if !g.collector.ShouldFlush(frame) {
		return
	}

	uptime := g.clock.Uptime(time.Now()).Seconds()
	stats := g.collector.Flush(frame, uptime, g.state.Sample())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
		g.logReadout()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, frame, g.clock.FPS()); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// logReadout logs the same values the HUD shows.
func (g *Game) logReadout() {
	r := g.readout()
	slog.Info("readout",
		"fps", r.FPS,
		"uptime_sec", r.Uptime.Seconds(),
		"window_w", r.ScreenWidth,
		"window_h", r.ScreenHeight,
		"target_density", r.TargetDensity,
		"pressure_multiplier", r.PressureMultiplier,
		"speed_scale", r.SpeedScale,
		"force_scale", r.ForceScale,
		"pointer_x", r.PointerX,
		"pointer_y", r.PointerY,
	)
}
