package telemetry

import "time"

// fpsSmoothing is the weight of the newest frame in the FPS moving average.
const fpsSmoothing = 0.1

// FrameClock is the engine's time source: uptime since start and a smoothed
// frame rate. Callers pass the current time so headless runs and tests can
// drive it deterministically.
type FrameClock struct {
	start     time.Time
	last      time.Time
	frameTime time.Duration
	fps       float64
	frames    uint64
}

// NewFrameClock starts a clock at now.
func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{start: now, last: now}
}

// Tick marks the end of a frame at now.
func (c *FrameClock) Tick(now time.Time) {
	dt := now.Sub(c.last)
	c.last = now
	c.frames++
	if dt <= 0 {
		return
	}
	c.frameTime = dt
	instant := float64(time.Second) / float64(dt)
	if c.fps == 0 {
		c.fps = instant
		return
	}
	c.fps += (instant - c.fps) * fpsSmoothing
}

// FPS returns the smoothed frames per second, 0 before the first timed frame.
func (c *FrameClock) FPS() float64 {
	return c.fps
}

// FrameTime returns the duration of the last frame.
func (c *FrameClock) FrameTime() time.Duration {
	return c.frameTime
}

// Frames returns the number of ticks so far.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// Uptime returns the time elapsed since the clock started.
func (c *FrameClock) Uptime(now time.Time) time.Duration {
	return now.Sub(c.start)
}
