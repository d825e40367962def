package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gushy/ui"
)

const controlsText = "Up/Down speed  Left/Right force  W/S density  A/D pressure  Wheel zoom  Tab panel  Space pause  Q quit"

// Draw renders one frame: background, dots, readout and panel.
func (g *Game) Draw() {
	s := g.state
	w, h := int32(g.screenWidth), int32(g.screenHeight)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw(w, h, s.Params.Zoom)

	highlight := s.Selected()
	if highlight < 0 {
		highlight = s.Nearest()
	}
	g.dots.Draw(s.Dots(), s.Camera(), s.Params.Zoom, highlight, s.FocusColor, s.HasFocus)

	g.hud.Draw(g.readout())
	g.hud.DrawControls(h, controlsText)
	g.controls.Draw(s, w, h)

	rl.EndDrawing()
}

// readout gathers the debug values shown in the HUD and logged in headless runs.
func (g *Game) readout() ui.HUDData {
	s := g.state
	return ui.HUDData{
		FPS:                g.clock.FPS(),
		Uptime:             g.clock.Uptime(time.Now()),
		ScreenWidth:        int32(g.screenWidth),
		ScreenHeight:       int32(g.screenHeight),
		TargetDensity:      s.Params.TargetDensity,
		PressureMultiplier: s.Params.PressureMultiplier,
		SpeedScale:         s.Params.SpeedScale,
		ForceScale:         s.Params.ForceScale,
		Zoom:               s.Params.Zoom,
		PointerX:           s.Pointer.Position.X,
		PointerY:           s.Pointer.Position.Y,
		Paused:             g.paused,
	}
}
