//go:build atsamd21

package main

import (
	"runtime/volatile"
	"unsafe"
)

// SAMD21 128-bit serial number words in the NVM calibration area
const (
	serialWord0 = 0x0080A00C
	serialWord1 = 0x0080A040
	serialWord2 = 0x0080A044
	serialWord3 = 0x0080A048
)

// NVMIdentity holds the chip serial words, read once at startup
type NVMIdentity struct {
	words [4]uint32
}

// ReadNVMIdentity reads the serial number words
func ReadNVMIdentity() *NVMIdentity {
	id := &NVMIdentity{}
	for i, addr := range [4]uintptr{serialWord0, serialWord1, serialWord2, serialWord3} {
		id.words[i] = (*volatile.Register32)(unsafe.Pointer(addr)).Get()
	}
	return id
}

// IdentityWords implements core.IdentitySource
func (n *NVMIdentity) IdentityWords() [4]uint32 {
	return n.words
}
