package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer draws the checkerboard floor and the arena frame.
type BackgroundRenderer struct {
	TileSize    int32
	Parallax    float32 // offset factor, divided by zoom
	Light       rl.Color
	Dark        rl.Color
	BorderInset float32
	BorderWidth float32
	BorderColor rl.Color
}

// NewBackgroundRenderer creates a background renderer with the default palette.
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		TileSize:    30,
		Parallax:    0.8,
		Light:       rl.Color{R: 89, G: 112, B: 67, A: 255},
		Dark:        rl.Color{R: 119, G: 163, B: 77, A: 255},
		BorderInset: 50,
		BorderWidth: 5,
		BorderColor: rl.Black,
	}
}

// Draw renders the background for a window of the given size.
// Zooming in shifts the tile pattern less, so the floor appears further away.
func (b *BackgroundRenderer) Draw(screenW, screenH int32, zoom float32) {
	if zoom < 0.1 {
		zoom = 0.1
	}
	tile := b.TileSize
	factor := b.Parallax / zoom
	offX := int32(float32(screenW) / 2 * factor)
	offY := int32(float32(screenH) / 2 * factor)

	for y := int32(0); y < screenH; y += tile {
		for x := int32(0); x < screenW; x += tile {
			color := b.Dark
			if ((x+offX)/tile+(y+offY)/tile)%2 == 0 {
				color = b.Light
			}
			rl.DrawRectangle(x, y, tile, tile, color)
		}
	}

	frame := rl.Rectangle{
		X:      b.BorderInset,
		Y:      b.BorderInset,
		Width:  float32(screenW) - 2*b.BorderInset,
		Height: float32(screenH) - 2*b.BorderInset,
	}
	if frame.Width > 0 && frame.Height > 0 {
		rl.DrawRectangleLinesEx(frame, b.BorderWidth, b.BorderColor)
	}
}
