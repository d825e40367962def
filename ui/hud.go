package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the debug readout shows.
type HUDData struct {
	FPS          float64
	Uptime       time.Duration
	ScreenWidth  int32
	ScreenHeight int32

	TargetDensity      float32
	PressureMultiplier float32
	SpeedScale         float32
	ForceScale         float32
	Zoom               float32

	PointerX, PointerY float32 // simulation space
	Paused             bool
}

// HUD renders the debug readout in the top-left corner.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	x, y := int32(10), int32(10)
	r.DrawPanel(x-5, y-5, 300, 9*r.Theme.LineHeight+10)

	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%.2f", data.FPS))
	y = r.DrawLabelValue(x, y, "Up time", fmt.Sprintf("%.2f sec", data.Uptime.Seconds()))
	y = r.DrawLabelValue(x, y, "Window", fmt.Sprintf("%d x %d", data.ScreenWidth, data.ScreenHeight))
	y = r.DrawLabelValue(x, y, "Target density", fmt.Sprintf("%.3f", data.TargetDensity))
	y = r.DrawLabelValue(x, y, "Pressure mult", fmt.Sprintf("%.2f", data.PressureMultiplier))
	y = r.DrawLabelValue(x, y, "Speed scale", fmt.Sprintf("%.2f", data.SpeedScale))
	y = r.DrawLabelValue(x, y, "Force scale", fmt.Sprintf("%.2f", data.ForceScale))
	y = r.DrawLabelValue(x, y, "Zoom", fmt.Sprintf("%.2f", data.Zoom))
	r.DrawLabelValue(x, y, "Pointer", fmt.Sprintf("(%.1f, %.1f)", data.PointerX, data.PointerY))

	if data.Paused {
		rl.DrawText("PAUSED", x, y+r.Theme.LineHeight+10, 20, rl.Yellow)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.RayWhite)
}
