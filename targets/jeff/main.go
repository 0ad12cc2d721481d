//go:build atsamd21

package main

import (
	"github.com/ejohnstown/blackmagic/core"
	"time"
)

func main() {
	InitUSB()

	gpioDriver := NewSAMGPIODriver()
	core.SetGPIODriver(gpioDriver)
	core.SetIdentitySource(ReadNVMIdentity())

	if err := initProbePins(gpioDriver); err != nil {
		return
	}

	// SRST idles high (released); LED idles low
	err := core.Init(core.Config{
		ResetPin:       pinSRST,
		ResetActiveLow: true,
		ActivityPin:    pinLED,
		HasActivityPin: true,
	})
	if err != nil {
		return
	}

	// Start ticking only once every pin the tick touches is configured
	InitClock()

	// The GDB server and JTAG/SWD drivers run above this layer
	for {
		time.Sleep(time.Second)
	}
}

// initProbePins parks the JTAG/SWD pins: clocks and data out low, TDO in,
// SWDIO readable with pull-up
func initProbePins(d *SAMGPIODriver) error {
	for _, pin := range []core.GPIOPin{pinTCK, pinTDI} {
		if err := d.ConfigureOutput(pin, false); err != nil {
			return err
		}
	}
	if err := d.ConfigureBidirectional(pinSWDIO); err != nil {
		return err
	}
	if err := d.ConfigureOutput(pinSWCLK, false); err != nil {
		return err
	}
	return d.ConfigureInput(pinTDO)
}
