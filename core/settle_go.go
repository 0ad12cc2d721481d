//go:build !tinygo

package core

// ResetSettleIterations is the length of the reset settle spin
const ResetSettleIterations = 10000

// settleSink keeps the spin from being optimized away
var settleSink uint32

// settleReset spins a fixed iteration count after asserting reset
func settleReset() {
	var n uint32
	for i := 0; i < ResetSettleIterations; i++ {
		n++
	}
	settleSink = n
}
