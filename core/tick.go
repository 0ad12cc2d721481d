package core

import "go.uber.org/atomic"

var (
	// running mirrors the probe's "debug session active" state
	running atomic.Bool

	// activityPin is published before activityBound so a tick that sees
	// the bound flag reads a whole pin number
	activityPin   atomic.Uint32
	activityBound atomic.Bool
)

// Tick advances the millisecond clock by one tick period.
// Called from the backend's periodic timer interrupt (or its software
// equivalent). Must never block or fail.
func Tick() {
	if running.Load() && activityBound.Load() {
		gpioDriver.TogglePin(GPIOPin(activityPin.Load()))
	}
	advanceTime(TickIncrementMs)
}

// SetRunning marks whether a debug session is active.
// While running, Tick toggles the activity indicator.
func SetRunning(r bool) {
	running.Store(r)
}

// IsRunning reports the debug session state
func IsRunning() bool {
	return running.Load()
}

// SetActivityPin binds the activity indicator output.
// The pin must already be configured as an output. Safe to call while
// ticks are running.
func SetActivityPin(pin GPIOPin) {
	activityPin.Store(uint32(pin))
	activityBound.Store(true)
}

// clearActivityPin unbinds the activity indicator
func clearActivityPin() {
	activityBound.Store(false)
}
