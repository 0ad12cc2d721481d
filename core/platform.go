package core

// VoltageNotSupported is returned by TargetVoltage when the board cannot
// measure the target supply. Callers compare against it; there is no error.
const VoltageNotSupported = "not supported"

// Config describes the board wiring the core needs
type Config struct {
	ResetPin       GPIOPin
	ResetActiveLow bool

	ActivityPin    GPIOPin
	HasActivityPin bool
}

// VoltageSensor reports the target supply as a display string
type VoltageSensor func() string

// BootHandler reboots the probe into its bootloader
type BootHandler func()

var (
	voltageSensor VoltageSensor
	bootHandler   BootHandler
)

// Init configures the board's activity and reset outputs.
// The GPIO driver must already be registered.
func Init(cfg Config) error {
	drv := MustGPIO()
	ClearEvents()
	clearActivityPin()

	if cfg.HasActivityPin {
		if err := drv.ConfigureOutput(cfg.ActivityPin, false); err != nil {
			return err
		}
		SetActivityPin(cfg.ActivityPin)
	}

	line, err := NewResetLine(cfg.ResetPin, cfg.ResetActiveLow)
	if err != nil {
		return err
	}
	BindReset(line)

	DebugPrintln("[PLATFORM] srst pin=" + utoa(uint32(cfg.ResetPin)) + " tick=" + utoa(TickIncrementMs) + "ms")
	return nil
}

// SetVoltageSensor registers a target voltage reader (nil to remove)
func SetVoltageSensor(s VoltageSensor) {
	voltageSensor = s
}

// TargetVoltage returns the target supply voltage, or VoltageNotSupported
func TargetVoltage() string {
	if voltageSensor == nil {
		return VoltageNotSupported
	}
	return voltageSensor()
}

// SetBootHandler registers the bootloader entry handler (nil to remove)
func SetBootHandler(h BootHandler) {
	bootHandler = h
}

// RequestBoot enters the bootloader if the board supports it
func RequestBoot() {
	if bootHandler != nil {
		bootHandler()
	}
}
