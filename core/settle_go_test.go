//go:build !tinygo

package core

import "testing"

func TestResetLineDefaultSettle(t *testing.T) {
	resetCoreState(t)
	line, err := NewResetLine(GPIOPin(2), true)
	if err != nil {
		t.Fatal(err)
	}

	line.Set(true)
	if settleSink != ResetSettleIterations {
		t.Errorf("Expected %d settle iterations, got %d", ResetSettleIterations, settleSink)
	}
	if TimeMs() != 0 {
		t.Error("Settle must not depend on the tick clock")
	}
}
