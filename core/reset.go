package core

// ResetLine drives the target's SRST output.
// Callers see the logical state only: Set(true) always means "hold the
// target in reset", whatever the wiring polarity.
type ResetLine struct {
	pin       GPIOPin
	activeLow bool
	settle    func()
}

// NewResetLine configures pin as an output in the deasserted state
func NewResetLine(pin GPIOPin, activeLow bool) (*ResetLine, error) {
	r := &ResetLine{
		pin:       pin,
		activeLow: activeLow,
		settle:    settleReset,
	}
	if err := MustGPIO().ConfigureOutput(pin, r.level(false)); err != nil {
		return nil, err
	}
	return r, nil
}

// Pin returns the bound GPIO pin
func (r *ResetLine) Pin() GPIOPin {
	return r.pin
}

// ActiveLow reports the wiring polarity
func (r *ResetLine) ActiveLow() bool {
	return r.activeLow
}

// Set asserts or releases reset.
// Asserting holds for the settle window before returning so the target
// sees a minimum pulse width; releasing returns immediately.
func (r *ResetLine) Set(assert bool) {
	MustGPIO().SetPin(r.pin, r.level(assert))
	if assert {
		RecordEvent(EvtSrstAssert, TimeMs(), uint32(r.pin))
		r.settle()
		return
	}
	RecordEvent(EvtSrstRelease, TimeMs(), uint32(r.pin))
}

// Asserted samples the line and reports whether reset is held
func (r *ResetLine) Asserted() bool {
	return MustGPIO().GetPin(r.pin) == r.level(true)
}

// Pulse asserts reset, holds it for holdMs, then releases it
func (r *ResetLine) Pulse(holdMs uint32) {
	r.Set(true)
	Delay(holdMs)
	r.Set(false)
}

// level maps a logical reset state to the electrical pin level
func (r *ResetLine) level(assert bool) bool {
	return assert != r.activeLow
}

// Board reset line used by the upward API.
var srstLine *ResetLine

// BindReset registers the board's reset line
func BindReset(r *ResetLine) {
	srstLine = r
}

// MustReset returns the bound reset line or panics if missing.
func MustReset() *ResetLine {
	if srstLine == nil {
		panic("reset line not configured")
	}
	return srstLine
}

// SrstSetVal asserts (true) or releases (false) the target reset
func SrstSetVal(assert bool) {
	MustReset().Set(assert)
}

// SrstGetVal reports whether the target reset is asserted
func SrstGetVal() bool {
	return MustReset().Asserted()
}
