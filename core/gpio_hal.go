package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
//
// Only configuration can fail. SetPin, GetPin and TogglePin are called
// from the tick interrupt and the reset path and must not.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output driven to initial
	ConfigureOutput(pin GPIOPin, initial bool) error

	// ConfigureInput configures a pin as a floating digital input
	ConfigureInput(pin GPIOPin) error

	// SetPin drives the pin high (true) or low (false)
	SetPin(pin GPIOPin, value bool)

	// GetPin samples the electrical level on the pin
	GetPin(pin GPIOPin) bool

	// TogglePin inverts the driven level of an output pin
	TogglePin(pin GPIOPin)
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
