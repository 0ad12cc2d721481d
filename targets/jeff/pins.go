//go:build atsamd21

package main

import (
	"github.com/ejohnstown/blackmagic/core"
	"machine"
)

// Board pin map. PA24/PA25 are taken by USB.
const (
	pinLED   = core.GPIOPin(machine.PA27) // Idle/run activity LED
	pinSRST  = core.GPIOPin(machine.PA08) // Target nRST, active low
	pinTMS   = core.GPIOPin(machine.PA00)
	pinTCK   = core.GPIOPin(machine.PA01)
	pinTDI   = core.GPIOPin(machine.PA04)
	pinTDO   = core.GPIOPin(machine.PA05)
	pinSWDIO = pinTMS // SWD shares TMS/TCK
	pinSWCLK = pinTCK
)
