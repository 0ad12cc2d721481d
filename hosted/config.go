package hosted

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config describes how the hosted probe is wired to the target
type Config struct {
	// ResetPin is the periph.io name of the pin wired to the target's nRST
	ResetPin string `json:"reset_pin"`

	// ResetActiveLow selects the reset polarity (default true)
	ResetActiveLow *bool `json:"reset_active_low,omitempty"`

	// ActivityPin optionally names an LED blinked while a session runs
	ActivityPin string `json:"activity_pin,omitempty"`

	// MachineIDPath is the hex machine id the serial number derives from
	MachineIDPath string `json:"machine_id_path,omitempty"`
}

const (
	defaultResetPin      = "GPIO4"
	defaultMachineIDPath = "/etc/machine-id"
)

// LoadConfig parses a JSON configuration and applies defaults
func LoadConfig(jsonData []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, errors.Wrap(err, "parse hosted config")
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfigFile reads and parses a JSON configuration file
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read hosted config %s", path)
	}
	return LoadConfig(data)
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// applyDefaults fills in missing configuration values
func applyDefaults(config *Config) {
	if config.ResetPin == "" {
		config.ResetPin = defaultResetPin
	}
	if config.ResetActiveLow == nil {
		activeLow := true
		config.ResetActiveLow = &activeLow
	}
	if config.MachineIDPath == "" {
		config.MachineIDPath = defaultMachineIDPath
	}
}

// Validate checks the pin assignment
func (c *Config) Validate() error {
	if c.ResetPin == "" {
		return errors.New("reset_pin is required")
	}
	if c.ActivityPin != "" && c.ActivityPin == c.ResetPin {
		return errors.Errorf("activity_pin and reset_pin are both %s", c.ResetPin)
	}
	return nil
}

// IsResetActiveLow reports the configured reset polarity
func (c *Config) IsResetActiveLow() bool {
	return c.ResetActiveLow == nil || *c.ResetActiveLow
}
