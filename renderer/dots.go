package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gushy/camera"
	"github.com/pthm-cable/gushy/components"
)

// DotRenderer draws the swarm.
type DotRenderer struct {
	RadiusFactor float32 // world radius = zoom * RadiusFactor
	Outline      rl.Color
}

// NewDotRenderer creates a dot renderer.
func NewDotRenderer() *DotRenderer {
	return &DotRenderer{
		RadiusFactor: 3.0 / 5.0,
		Outline:      rl.White,
	}
}

// Radius returns the on-screen radius of a dot in pixels.
func (r *DotRenderer) Radius(cam *camera.Camera, zoom float32) float32 {
	if zoom < 0.1 {
		zoom = 0.1
	}
	return zoom * r.RadiusFactor * cam.PixelsPerUnit()
}

// Draw renders all dots. highlight is the index of the dot under or held by
// the pointer, or -1. A held dot gets a second ring in the focus color.
func (r *DotRenderer) Draw(dots []components.Dot, cam *camera.Camera, zoom float32, highlight int, focus components.Color, hasFocus bool) {
	radius := r.Radius(cam, zoom)
	worldRadius := radius / cam.PixelsPerUnit()

	for i := range dots {
		d := &dots[i]
		if !cam.IsVisible(d.Position.X, d.Position.Y, worldRadius) {
			continue
		}
		sx, sy := cam.WorldToScreen(d.Position.X, d.Position.Y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, toRL(d.Color))
	}

	if highlight < 0 || highlight >= len(dots) {
		return
	}
	d := &dots[highlight]
	sx, sy := cam.WorldToScreen(d.Position.X, d.Position.Y)
	rl.DrawCircleLines(int32(sx), int32(sy), radius+2, r.Outline)
	if hasFocus && d.Selected {
		rl.DrawCircleLines(int32(sx), int32(sy), radius+5, toRL(focus))
	}
}

func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
