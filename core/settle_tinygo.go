//go:build tinygo

package core

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

// ResetSettleTime is the minimum reset pulse width.
// Cycle-counted against the CPU clock, so it is independent of the
// 10ms tick granularity.
const ResetSettleTime = time.Millisecond

// settleReset busy-waits the settle window after asserting reset
func settleReset() {
	delay.Sleep(ResetSettleTime)
}
