package core

// Delay blocks for at least ms milliseconds by busy-polling a Timeout.
// Overshoot is up to one tick period.
//
// Delay cannot be interrupted. Code that must stay responsive should
// poll Timeout.IsExpired from its own loop instead.
func Delay(ms uint32) {
	RecordEvent(EvtDelayStart, TimeMs(), ms)
	t := NewTimeout(ms)
	for !t.IsExpired() {
	}
	RecordEvent(EvtDelayEnd, TimeMs(), ms)
}
