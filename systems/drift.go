package systems

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/pthm-cable/gushy/components"
)

// Perlin noise parameters for the drift field.
const (
	driftAlpha   = 2.0
	driftBeta    = 2.0
	driftOctaves = 3
)

// DriftField is a slowly evolving noise flow added to the ambient bias.
// A nil field or zero strength contributes nothing.
type DriftField struct {
	noise    *perlin.Perlin
	Strength float32 // force magnitude
	Scale    float32 // spatial frequency of the noise
	Speed    float32 // noise offset advanced per frame
}

// NewDriftField creates a drift field seeded for reproducible runs.
func NewDriftField(seed int64, strength, scale, speed float32) *DriftField {
	return &DriftField{
		noise:    perlin.NewPerlin(driftAlpha, driftBeta, driftOctaves, seed),
		Strength: strength,
		Scale:    scale,
		Speed:    speed,
	}
}

// At returns the drift force at pos for the given frame.
func (f *DriftField) At(pos components.Vec2, frame uint64) components.Vec2 {
	if f == nil || f.Strength == 0 {
		return components.Vec2{}
	}
	t := float64(frame) * float64(f.Speed)
	n := f.noise.Noise2D(float64(pos.X*f.Scale)+t, float64(pos.Y*f.Scale)-t)
	angle := n * 2 * math.Pi
	return components.Vec2{
		X: float32(math.Cos(angle)) * f.Strength,
		Y: float32(math.Sin(angle)) * f.Strength,
	}
}
