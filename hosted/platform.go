package hosted

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/ejohnstown/blackmagic/core"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"periph.io/x/host/v3"
)

// Platform is the core running on a Linux host
type Platform struct {
	cfg    *Config
	logger *zap.SugaredLogger
	gpio   *PeriphGPIODriver
	ticks  *TickSource
}

// Open initializes periph, claims the configured pins, binds the core and
// starts the tick source
func Open(ctx context.Context, cfg *Config, logger *zap.SugaredLogger) (*Platform, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph host init")
	}

	drv := NewPeriphGPIODriver(logger)
	if _, err := drv.RegisterByName(cfg.ResetPin); err != nil {
		return nil, err
	}
	if cfg.ActivityPin != "" {
		if _, err := drv.RegisterByName(cfg.ActivityPin); err != nil {
			return nil, err
		}
	}
	return openWithDriver(ctx, cfg, drv, clock.New(), logger)
}

// openWithDriver wires an already populated driver into the core
func openWithDriver(
	ctx context.Context,
	cfg *Config,
	drv *PeriphGPIODriver,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) (*Platform, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	identity, err := ReadMachineID(cfg.MachineIDPath)
	if err != nil {
		return nil, err
	}

	resetPin, err := drv.PinByName(cfg.ResetPin)
	if err != nil {
		return nil, err
	}
	coreCfg := core.Config{
		ResetPin:       resetPin,
		ResetActiveLow: cfg.IsResetActiveLow(),
	}
	if cfg.ActivityPin != "" {
		activityPin, err := drv.PinByName(cfg.ActivityPin)
		if err != nil {
			return nil, err
		}
		coreCfg.ActivityPin = activityPin
		coreCfg.HasActivityPin = true
	}

	core.SetGPIODriver(drv)
	core.SetIdentitySource(identity)
	if err := core.Init(coreCfg); err != nil {
		return nil, errors.Wrap(err, "core init")
	}

	p := &Platform{
		cfg:    cfg,
		logger: logger,
		gpio:   drv,
		ticks:  NewTickSource(clk, logger),
	}
	p.ticks.Start(ctx)

	logger.Infow("hosted platform ready",
		"reset_pin", cfg.ResetPin,
		"active_low", cfg.IsResetActiveLow(),
		"serial", core.SerialNumber())
	return p, nil
}

// Config returns the configuration the platform was opened with
func (p *Platform) Config() *Config {
	return p.cfg
}

// Close stops the tick source, releases reset and halts every pin
func (p *Platform) Close() error {
	p.ticks.Stop()
	core.SetRunning(false)

	if core.SrstGetVal() {
		core.SrstSetVal(false)
	}
	err := p.gpio.Halt()
	core.BindReset(nil)
	return err
}
