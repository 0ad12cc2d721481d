package core

import (
	"time"

	"go.uber.org/atomic"
)

// Timebase constants shared by every backend
const (
	TickIncrementMs = 10                                 // Milliseconds added per tick
	TickPeriod      = TickIncrementMs * time.Millisecond // Hardware/software tick interval
	TickRateHz      = uint32(time.Second / TickPeriod)   // Ticks per second
)

// monotonicMs is the millisecond clock. Tick is its only writer.
var monotonicMs atomic.Uint32

// TimeMs returns the current millisecond clock reading
func TimeMs() uint32 {
	return monotonicMs.Load()
}

// SetTime sets the millisecond clock (for backends mirroring a hardware counter, and tests)
func SetTime(ms uint32) {
	monotonicMs.Store(ms)
}

// advanceTime adds ms to the clock, wrapping at 32 bits
func advanceTime(ms uint32) uint32 {
	return monotonicMs.Add(ms)
}
