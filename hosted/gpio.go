package hosted

import (
	"github.com/ejohnstown/blackmagic/core"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// hostPin is a registered periph pin and the level we last drove on it
type hostPin struct {
	io     gpio.PinIO
	driven atomic.Bool
	// toggleFailing is set while toggles keep failing, so each failure
	// streak logs once
	toggleFailing atomic.Bool
}

// PeriphGPIODriver implements core.GPIODriver over periph.io pins.
// Pins must be registered before the tick source starts; after that the
// pin table is read-only.
type PeriphGPIODriver struct {
	pins   map[core.GPIOPin]*hostPin
	byName map[string]core.GPIOPin
	logger *zap.SugaredLogger

	unknownToggle atomic.Bool
}

// NewPeriphGPIODriver creates an empty driver
func NewPeriphGPIODriver(logger *zap.SugaredLogger) *PeriphGPIODriver {
	return &PeriphGPIODriver{
		pins:   make(map[core.GPIOPin]*hostPin),
		byName: make(map[string]core.GPIOPin),
		logger: logger,
	}
}

// Register adds a periph pin, numbered by its periph pin number
func (d *PeriphGPIODriver) Register(p gpio.PinIO) core.GPIOPin {
	pin := core.GPIOPin(p.Number())
	d.pins[pin] = &hostPin{io: p}
	d.byName[p.Name()] = pin
	return pin
}

// RegisterByName looks a pin up in the periph registry and registers it
func (d *PeriphGPIODriver) RegisterByName(name string) (core.GPIOPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return 0, errors.Errorf("gpio: no pin named %q", name)
	}
	return d.Register(p), nil
}

// PinByName returns the core pin number for a registered pin name
func (d *PeriphGPIODriver) PinByName(name string) (core.GPIOPin, error) {
	pin, ok := d.byName[name]
	if !ok {
		return 0, errors.Errorf("gpio: pin %q not registered", name)
	}
	return pin, nil
}

func (d *PeriphGPIODriver) lookup(pin core.GPIOPin) (*hostPin, error) {
	p, ok := d.pins[pin]
	if !ok {
		return nil, errors.Errorf("gpio: pin %d not registered", pin)
	}
	return p, nil
}

// ConfigureOutput configures a pin as a digital output driven to initial
func (d *PeriphGPIODriver) ConfigureOutput(pin core.GPIOPin, initial bool) error {
	p, err := d.lookup(pin)
	if err != nil {
		return err
	}
	if err := p.io.Out(gpio.Level(initial)); err != nil {
		return errors.Wrapf(err, "gpio: configure %s as output", p.io.Name())
	}
	p.driven.Store(initial)
	return nil
}

// ConfigureInput configures a pin as a floating digital input
func (d *PeriphGPIODriver) ConfigureInput(pin core.GPIOPin) error {
	p, err := d.lookup(pin)
	if err != nil {
		return err
	}
	if err := p.io.In(gpio.Float, gpio.NoEdge); err != nil {
		return errors.Wrapf(err, "gpio: configure %s as input", p.io.Name())
	}
	return nil
}

// SetPin drives the pin high (true) or low (false)
func (d *PeriphGPIODriver) SetPin(pin core.GPIOPin, value bool) {
	p, err := d.lookup(pin)
	if err != nil {
		d.logger.Warnw("set on unknown pin", "pin", pin)
		return
	}
	if err := p.io.Out(gpio.Level(value)); err != nil {
		d.logger.Errorw("gpio write failed", "pin", p.io.Name(), "error", err)
		return
	}
	p.driven.Store(value)
}

// GetPin samples the electrical level on the pin
func (d *PeriphGPIODriver) GetPin(pin core.GPIOPin) bool {
	p, err := d.lookup(pin)
	if err != nil {
		d.logger.Warnw("read on unknown pin", "pin", pin)
		return false
	}
	return p.io.Read() == gpio.High
}

// TogglePin inverts the last driven level.
// Runs on the tick path, so a persistent failure is logged once until a
// toggle succeeds again.
func (d *PeriphGPIODriver) TogglePin(pin core.GPIOPin) {
	p, err := d.lookup(pin)
	if err != nil {
		if d.unknownToggle.CompareAndSwap(false, true) {
			d.logger.Warnw("toggle on unknown pin", "pin", pin)
		}
		return
	}
	next := !p.driven.Load()
	if err := p.io.Out(gpio.Level(next)); err != nil {
		if p.toggleFailing.CompareAndSwap(false, true) {
			d.logger.Errorw("gpio toggle failed", "pin", p.io.Name(), "error", err)
		}
		return
	}
	if p.toggleFailing.Swap(false) {
		d.logger.Infow("gpio toggle recovered", "pin", p.io.Name())
	}
	p.driven.Store(next)
}

// Halt stops driving every registered pin
func (d *PeriphGPIODriver) Halt() error {
	var err error
	for _, p := range d.pins {
		if haltErr := p.io.Halt(); haltErr != nil {
			err = multierr.Append(err, errors.Wrapf(haltErr, "gpio: halt %s", p.io.Name()))
		}
	}
	return err
}
