package sim

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/gushy/components"
	"github.com/pthm-cable/gushy/config"
	"github.com/pthm-cable/gushy/systems"
)

// Dot layouts.
const (
	LayoutRing = "ring" // on a circle around the center, moving tangentially
	LayoutRect = "rect" // uniform inside the walls, at rest
)

// Ring layout angles are drawn from [ringAngleMin, ringAngleMax).
const (
	ringAngleMin = 1.0
	ringAngleMax = 3 * math.Pi
)

// GenerateDots creates the initial swarm. The count never changes afterwards.
func GenerateDots(rng *rand.Rand, dc config.DotsConfig, bounds systems.Bounds) []components.Dot {
	dots := make([]components.Dot, dc.Count)

	orbit := float32(dc.OrbitRadius)
	speed := float32(math.Sqrt(dc.OrbitRadius/(float64(dc.Count)*10))) * 0.1

	for i := range dots {
		color := jitterColor(rng, dc.BaseColor, dc.ColorJitter)

		switch dc.Layout {
		case LayoutRect:
			pos := components.V(
				(rng.Float32()*2-1)*bounds.HalfW,
				(rng.Float32()*2-1)*bounds.HalfH,
			)
			dots[i] = components.NewDot(pos, components.Vec2{}, color)
		default:
			angle := ringAngleMin + rng.Float64()*(ringAngleMax-ringAngleMin)
			sin, cos := math.Sincos(angle)
			pos := components.V(orbit*float32(cos), orbit*float32(sin))
			vel := components.V(-speed/2*float32(sin), speed/2.5*float32(cos))
			dots[i] = components.NewDot(pos, vel, color)
		}
	}
	return dots
}

// jitterColor offsets each channel of base by a value in [-jitter, jitter).
func jitterColor(rng *rand.Rand, base [3]int, jitter int) components.Color {
	var ch [3]uint8
	for i, b := range base {
		v := b
		if jitter > 0 {
			v += rng.Intn(2*jitter) - jitter
		}
		ch[i] = uint8(min(max(v, 0), 255))
	}
	return components.RGBA(ch[0], ch[1], ch[2], 255)
}
