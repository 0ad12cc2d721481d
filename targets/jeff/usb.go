//go:build atsamd21

package main

import (
	"machine"
)

// InitUSB brings up the USB CDC-ACM port the GDB server runs on.
// TinyGo's runtime owns the USB clock, pin mux and descriptors.
func InitUSB() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}
}
