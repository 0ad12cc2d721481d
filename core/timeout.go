package core

// Timeout is a caller-owned "has N milliseconds elapsed" value.
// It stores the clock reading at Set time and the requested duration,
// so expiry stays correct across the 32-bit clock wrap.
type Timeout struct {
	start    uint32
	duration uint32
}

// NewTimeout returns a Timeout that expires ms milliseconds from now
func NewTimeout(ms uint32) Timeout {
	var t Timeout
	t.Set(ms)
	return t
}

// Set arms the timeout to expire ms milliseconds from now
func (t *Timeout) Set(ms uint32) {
	t.start = TimeMs()
	t.duration = ms
}

// IsExpired reports whether the duration has elapsed.
// Never blocks and never modifies t.
func (t Timeout) IsExpired() bool {
	return t.elapsed() >= t.duration
}

// Remaining returns milliseconds left before expiry, 0 once expired
func (t Timeout) Remaining() uint32 {
	e := t.elapsed()
	if e >= t.duration {
		return 0
	}
	return t.duration - e
}

// Deadline returns the clock reading at which t expires (wrapping)
func (t Timeout) Deadline() uint32 {
	return t.start + t.duration
}

// elapsed uses unsigned subtraction so a wrap between Set and now is harmless.
// An unpolled timeout older than 2^32 ms (~49.7 days) reads as fresh again.
func (t Timeout) elapsed() uint32 {
	return TimeMs() - t.start
}
