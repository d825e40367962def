// Package game wires the swarm engine to a raylib window: input polling,
// rendering, the parameter panel and the telemetry hooks.
package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gushy/config"
	"github.com/pthm-cable/gushy/renderer"
	"github.com/pthm-cable/gushy/sim"
	"github.com/pthm-cable/gushy/telemetry"
	"github.com/pthm-cable/gushy/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Config overrides the global configuration. Used by the tuner to run
	// many differently configured games side by side.
	Config *config.Config

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game owns the simulation state and everything around it.
type Game struct {
	cfg   *config.Config
	state *sim.State

	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	clock         *telemetry.FrameClock
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	headless       bool
	paused         bool
	quit           bool
	stepsPerUpdate int

	screenWidth  float32
	screenHeight float32

	background *renderer.BackgroundRenderer
	dots       *renderer.DotRenderer
	hud        *ui.HUD
	controls   *ui.ControlsPanel
}

// NewGameWithOptions creates a game. In graphical mode the raylib window
// must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		state:          sim.NewState(cfg, opts.Seed),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Fluid.Mass),
		clock:          telemetry.NewFrameClock(time.Now()),
		statsCallback:  opts.StatsCallback,
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}
	g.state.OnPhase = g.perfCollector.StartPhase

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
		g.outputManager = om
	}

	if !g.headless {
		g.screenWidth = float32(rl.GetScreenWidth())
		g.screenHeight = float32(rl.GetScreenHeight())
		g.state.Resize(g.screenWidth, g.screenHeight)
		g.background = renderer.NewBackgroundRenderer()
		g.dots = renderer.NewDotRenderer()
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(260)
	}

	return g
}

// Update handles input and advances the simulation by stepsPerUpdate frames.
func (g *Game) Update() {
	g.clock.Tick(time.Now())
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without polling input.
func (g *Game) UpdateHeadless() {
	g.clock.Tick(time.Now())
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs one simulation frame with timing and telemetry.
func (g *Game) step() {
	g.perfCollector.StartFrame()
	g.state.Step()
	g.collector.RecordWallContacts(g.state.WallContacts)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndFrame()
}

// State exposes the simulation state.
func (g *Game) State() *sim.State {
	return g.state
}

// Frame returns the number of simulation frames run so far.
func (g *Game) Frame() uint64 {
	return g.state.Frame
}

// ShouldQuit reports whether the user asked to quit.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
