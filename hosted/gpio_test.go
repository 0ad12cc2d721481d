package hosted

import (
	"sync"
	"testing"

	"github.com/ejohnstown/blackmagic/core"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func newTestDriver() (*PeriphGPIODriver, *gpiotest.Pin, *gpiotest.Pin) {
	drv := NewPeriphGPIODriver(zap.NewNop().Sugar())
	reset := &gpiotest.Pin{N: "GPIO4", Num: 4}
	led := &gpiotest.Pin{N: "GPIO27", Num: 27}
	drv.Register(reset)
	drv.Register(led)
	return drv, reset, led
}

func TestPeriphGPIODriverRegister(t *testing.T) {
	drv, _, _ := newTestDriver()

	pin, err := drv.PinByName("GPIO4")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pin, test.ShouldEqual, core.GPIOPin(4))

	_, err = drv.PinByName("GPIO99")
	test.That(t, err, test.ShouldNotBeNil)

	// Nothing registered with periph in tests
	_, err = drv.RegisterByName("NOT_A_PIN")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPeriphGPIODriverOutput(t *testing.T) {
	drv, reset, _ := newTestDriver()

	test.That(t, drv.ConfigureOutput(4, true), test.ShouldBeNil)
	test.That(t, reset.Read(), test.ShouldEqual, gpio.High)
	test.That(t, drv.GetPin(4), test.ShouldBeTrue)

	drv.SetPin(4, false)
	test.That(t, reset.Read(), test.ShouldEqual, gpio.Low)
	test.That(t, drv.GetPin(4), test.ShouldBeFalse)

	drv.TogglePin(4)
	test.That(t, reset.Read(), test.ShouldEqual, gpio.High)
	drv.TogglePin(4)
	test.That(t, reset.Read(), test.ShouldEqual, gpio.Low)
}

func TestPeriphGPIODriverInput(t *testing.T) {
	drv, _, led := newTestDriver()

	test.That(t, drv.ConfigureInput(27), test.ShouldBeNil)
	test.That(t, led.Pull(), test.ShouldEqual, gpio.Float)
}

func TestPeriphGPIODriverUnknownPin(t *testing.T) {
	drv, _, _ := newTestDriver()

	test.That(t, drv.ConfigureOutput(5, false), test.ShouldNotBeNil)
	test.That(t, drv.ConfigureInput(5), test.ShouldNotBeNil)
	test.That(t, drv.GetPin(5), test.ShouldBeFalse)
	drv.SetPin(5, true)
	drv.TogglePin(5)
}

func TestPeriphGPIODriverHalt(t *testing.T) {
	drv, _, _ := newTestDriver()
	test.That(t, drv.Halt(), test.ShouldBeNil)
}

// flakyPin is a gpiotest pin whose writes fail while broken is set
type flakyPin struct {
	gpiotest.Pin
	mu     sync.Mutex
	broken bool
}

func (p *flakyPin) setBroken(b bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.broken = b
}

func (p *flakyPin) Out(l gpio.Level) error {
	p.mu.Lock()
	broken := p.broken
	p.mu.Unlock()
	if broken {
		return errors.New("bus error")
	}
	return p.Pin.Out(l)
}

func TestPeriphGPIODriverToggleFailureLogged(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	drv := NewPeriphGPIODriver(zap.New(obsCore).Sugar())
	led := &flakyPin{Pin: gpiotest.Pin{N: "GPIO27", Num: 27}}
	drv.Register(led)
	test.That(t, drv.ConfigureOutput(27, false), test.ShouldBeNil)

	led.setBroken(true)
	for i := 0; i < 5; i++ {
		drv.TogglePin(27)
	}
	test.That(t, led.Pin.Read(), test.ShouldEqual, gpio.Low)
	test.That(t, logs.FilterMessage("gpio toggle failed").Len(), test.ShouldEqual, 1)

	led.setBroken(false)
	drv.TogglePin(27)
	test.That(t, led.Pin.Read(), test.ShouldEqual, gpio.High)
	test.That(t, logs.FilterMessage("gpio toggle recovered").Len(), test.ShouldEqual, 1)

	// A new failure streak logs again
	led.setBroken(true)
	drv.TogglePin(27)
	drv.TogglePin(27)
	test.That(t, logs.FilterMessage("gpio toggle failed").Len(), test.ShouldEqual, 2)
}

func TestPeriphGPIODriverToggleUnknownPinLogged(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	drv := NewPeriphGPIODriver(zap.New(obsCore).Sugar())

	for i := 0; i < 3; i++ {
		drv.TogglePin(99)
	}
	test.That(t, logs.FilterMessage("toggle on unknown pin").Len(), test.ShouldEqual, 1)
}
