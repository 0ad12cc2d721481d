package core

import "testing"

// MockGPIODriver is a test implementation of GPIODriver
type MockGPIODriver struct {
	pins       map[GPIOPin]bool
	outputs    map[GPIOPin]bool
	toggles    map[GPIOPin]int
	failConfig bool
}

func NewMockGPIODriver() *MockGPIODriver {
	return &MockGPIODriver{
		pins:    make(map[GPIOPin]bool),
		outputs: make(map[GPIOPin]bool),
		toggles: make(map[GPIOPin]int),
	}
}

func (m *MockGPIODriver) ConfigureOutput(pin GPIOPin, initial bool) error {
	if m.failConfig {
		return errMockConfig
	}
	m.outputs[pin] = true
	m.pins[pin] = initial
	return nil
}

func (m *MockGPIODriver) ConfigureInput(pin GPIOPin) error {
	if m.failConfig {
		return errMockConfig
	}
	m.outputs[pin] = false
	return nil
}

func (m *MockGPIODriver) SetPin(pin GPIOPin, value bool) {
	m.pins[pin] = value
}

func (m *MockGPIODriver) GetPin(pin GPIOPin) bool {
	return m.pins[pin]
}

func (m *MockGPIODriver) TogglePin(pin GPIOPin) {
	m.toggles[pin]++
	m.pins[pin] = !m.pins[pin]
}

type mockError string

func (e mockError) Error() string { return string(e) }

const errMockConfig = mockError("mock configure failure")

// resetCoreState puts package globals back to power-on state
func resetCoreState(t *testing.T) *MockGPIODriver {
	t.Helper()
	drv := NewMockGPIODriver()
	SetGPIODriver(drv)
	SetTime(0)
	SetRunning(false)
	clearActivityPin()
	BindReset(nil)
	ClearEvents()
	t.Cleanup(func() {
		SetGPIODriver(nil)
		BindReset(nil)
		clearActivityPin()
		SetRunning(false)
	})
	return drv
}

func TestMustGPIOPanicsWithoutDriver(t *testing.T) {
	SetGPIODriver(nil)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustGPIO to panic without a driver")
		}
	}()
	MustGPIO()
}

func TestGPIODriverBasic(t *testing.T) {
	drv := resetCoreState(t)

	pin := GPIOPin(25)
	if err := MustGPIO().ConfigureOutput(pin, true); err != nil {
		t.Fatalf("ConfigureOutput failed: %v", err)
	}
	if !drv.GetPin(pin) {
		t.Error("Expected initial level high")
	}

	drv.SetPin(pin, false)
	if drv.GetPin(pin) {
		t.Error("Expected pin to be low, got high")
	}

	drv.TogglePin(pin)
	if !drv.GetPin(pin) {
		t.Error("Expected toggle to drive pin high")
	}
}
