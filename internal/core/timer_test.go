package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualTicks struct{ now uint32 }

func (m *manualTicks) Ticks() uint32 { return m.now }

func TestFrameGateFiresOncePerPeriod(t *testing.T) {
	src := &manualTicks{now: 100}
	gate := NewFrameGate(src, 5)

	fired := 0
	for i := 0; i < 50; i++ {
		src.now++
		if gate.Ready() {
			fired++
		}
		assert.False(t, gate.Ready(), "gate must not fire twice for tick %d", src.now)
	}
	assert.Equal(t, 10, fired)
}

func TestFrameGateHandlesWrap(t *testing.T) {
	src := &manualTicks{now: math.MaxUint32 - 2}
	gate := NewFrameGate(src, 5)

	src.now += 4
	assert.False(t, gate.Ready())
	src.now++
	assert.True(t, gate.Ready())
	assert.Equal(t, uint32(2), src.now)
}

func TestFrameGateLateTickFiresOnce(t *testing.T) {
	src := &manualTicks{}
	gate := NewFrameGate(src, 5)

	src.now = 23
	assert.True(t, gate.Ready())
	assert.False(t, gate.Ready())
	src.now = 27
	assert.False(t, gate.Ready())
	src.now = 28
	assert.True(t, gate.Ready())
}

func TestFrameGateDefaultsPeriod(t *testing.T) {
	gate := NewFrameGate(&manualTicks{}, 0)
	assert.Equal(t, uint32(DefaultFrameTicks), gate.Period())
}

func TestWallClockAdvances(t *testing.T) {
	c := NewWallClock(time.Millisecond)
	start := c.Ticks()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, c.Ticks()-start, uint32(4))
	assert.Equal(t, DefaultTick, NewWallClock(0).Tick())
}
