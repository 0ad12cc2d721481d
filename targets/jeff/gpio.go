//go:build atsamd21

package main

import (
	"github.com/ejohnstown/blackmagic/core"
	"machine"
	"runtime/volatile"
	"unsafe"
)

// SAMD21 PORT peripheral memory map
// Each group (PA, PB) is a 0x80 byte block at portBase + 0x80*group.
const (
	portBase        = 0x41004400
	portGroupStride = 0x80
	portOUTTGL      = 0x1C // Output toggle
	portIN          = 0x20 // Input value
	portPINCFG      = 0x40 // One byte per pin

	pincfgINEN   = 0x02 // Input buffer enable
	pincfgPULLEN = 0x04 // Pull enable (direction from OUT)
)

func portRegister(pin core.GPIOPin, offset uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(portBase) + uintptr(pin/32)*portGroupStride + offset))
}

func pinConfigRegister(pin core.GPIOPin) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(portBase) + uintptr(pin/32)*portGroupStride + portPINCFG + uintptr(pin%32)))
}

func pinMask(pin core.GPIOPin) uint32 {
	return 1 << (pin % 32)
}

// SAMGPIODriver implements the GPIODriver interface for the SAMD21
type SAMGPIODriver struct {
	// Track configured pins
	configuredPins map[core.GPIOPin]machine.Pin
}

// NewSAMGPIODriver creates a new SAMD21 GPIO driver
func NewSAMGPIODriver() *SAMGPIODriver {
	return &SAMGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a digital output driven to initial.
// The input buffer stays enabled so GetPin samples the real pin level.
func (d *SAMGPIODriver) ConfigureOutput(pin core.GPIOPin, initial bool) error {
	machinePin := machine.Pin(pin)
	machinePin.Set(initial)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machinePin.Set(initial)
	pinConfigRegister(pin).SetBits(pincfgINEN)

	d.configuredPins[pin] = machinePin
	return nil
}

// ConfigureInput configures a pin as a floating digital input
func (d *SAMGPIODriver) ConfigureInput(pin core.GPIOPin) error {
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinInput})

	d.configuredPins[pin] = machinePin
	return nil
}

// ConfigureBidirectional configures an output that is also read back with
// the pull-up enabled (SWDIO)
func (d *SAMGPIODriver) ConfigureBidirectional(pin core.GPIOPin) error {
	if err := d.ConfigureOutput(pin, false); err != nil {
		return err
	}
	pinConfigRegister(pin).SetBits(pincfgINEN | pincfgPULLEN)
	return nil
}

// SetPin drives the pin high (true) or low (false)
func (d *SAMGPIODriver) SetPin(pin core.GPIOPin, value bool) {
	machine.Pin(pin).Set(value)
}

// GetPin samples the electrical level on the pin
func (d *SAMGPIODriver) GetPin(pin core.GPIOPin) bool {
	return portRegister(pin, portIN).HasBits(pinMask(pin))
}

// TogglePin inverts the driven level with a single OUTTGL write
func (d *SAMGPIODriver) TogglePin(pin core.GPIOPin) {
	portRegister(pin, portOUTTGL).Set(pinMask(pin))
}
