//go:build atsamd21

package main

import (
	"github.com/ejohnstown/blackmagic/core"
	"machine"
	"runtime/volatile"
	"unsafe"
)

// Cortex-M0+ SysTick memory map
// TinyGo's SAMD21 runtime keeps time on the RTC, so SysTick is free.
const (
	sysTickBase = 0xE000E010
	sysTickCSR  = sysTickBase + 0x00 // Control and status
	sysTickRVR  = sysTickBase + 0x04 // Reload value (24 bit)
	sysTickCVR  = sysTickBase + 0x08 // Current value

	csrEnable    = 1 << 0
	csrTickInt   = 1 << 1
	csrClkSource = 1 << 2 // Processor clock
)

var (
	sysTickControl = (*volatile.Register32)(unsafe.Pointer(uintptr(sysTickCSR)))
	sysTickReload  = (*volatile.Register32)(unsafe.Pointer(uintptr(sysTickRVR)))
	sysTickCurrent = (*volatile.Register32)(unsafe.Pointer(uintptr(sysTickCVR)))
)

// InitClock starts SysTick at the core tick rate.
// At 48MHz the reload is 480000 cycles per 10ms tick.
func InitClock() {
	reload := machine.CPUFrequency() / core.TickRateHz
	sysTickReload.Set(reload - 1)
	sysTickCurrent.Set(0)
	sysTickControl.Set(csrClkSource | csrTickInt | csrEnable)
}

//export SysTick_Handler
func sysTickHandler() {
	core.Tick()
}
