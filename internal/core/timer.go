package core

import "time"

// TickSource is a free-running counter. It may wrap around.
type TickSource interface {
	Ticks() uint32
}

// DefaultTick is the tick resolution used by WallClock when none is given.
const DefaultTick = 20 * time.Millisecond

// DefaultFrameTicks is the number of ticks per logical frame.
const DefaultFrameTicks = 5

// WallClock counts ticks of a fixed resolution since construction.
type WallClock struct {
	start time.Time
	tick  time.Duration
}

// NewWallClock constructs a WallClock ticking every d.
func NewWallClock(d time.Duration) *WallClock {
	if d <= 0 {
		d = DefaultTick
	}
	return &WallClock{start: time.Now(), tick: d}
}

// Ticks returns the number of whole ticks elapsed, truncated to 32 bits.
func (c *WallClock) Ticks() uint32 {
	return uint32(time.Since(c.start) / c.tick)
}

// Tick returns the clock resolution.
func (c *WallClock) Tick() time.Duration { return c.tick }

// FrameGate fires once every period ticks of its source.
type FrameGate struct {
	src    TickSource
	period uint32
	last   uint32
}

// NewFrameGate constructs a gate that first fires one period from now.
func NewFrameGate(src TickSource, period uint32) *FrameGate {
	if period == 0 {
		period = DefaultFrameTicks
	}
	return &FrameGate{src: src, period: period, last: src.Ticks()}
}

// Period returns the number of ticks between frames.
func (g *FrameGate) Period() uint32 { return g.period }

// Ready reports whether a frame is due. A true result consumes the frame.
func (g *FrameGate) Ready() bool {
	now := g.src.Ticks()
	if now-g.last < g.period {
		return false
	}
	g.last = now
	return true
}
