package config

import (
	"errors"

	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/logging"
)

// Validate checks every section and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	switch c.Transport.Kind {
	case "serial":
		if c.Transport.Port == "" {
			fail("transport.port", "required for serial transport", c.Transport.Port)
		}
		if c.Transport.Baud <= 0 {
			fail("transport.baud", "must be positive", c.Transport.Baud)
		}
	case "terminal":
	default:
		fail("transport.kind", `must be "serial" or "terminal"`, c.Transport.Kind)
	}
	if c.Transport.ReadTimeoutMS < 0 {
		fail("transport.read_timeout_ms", "must not be negative", c.Transport.ReadTimeoutMS)
	}

	if c.Store.Path == "" {
		fail("store.path", "required", c.Store.Path)
	}

	for _, name := range c.Device.Sensors {
		if _, ok := flight.SensorByName(name); !ok {
			fail("device.sensors", "unknown sensor", name)
		}
	}
	if c.Device.CPUMHz < 0 {
		fail("device.cpu_mhz", "must not be negative", c.Device.CPUMHz)
	}
	if c.Device.AccHardware < 0 || c.Device.AccHardware > 255 {
		fail("device.acc_hardware", "must be 0-255", c.Device.AccHardware)
	}
	if c.Device.BatteryCells < 0 || c.Device.BatteryCells > 255 {
		fail("device.battery_cells", "must be 0-255", c.Device.BatteryCells)
	}
	if c.Device.VBat < 0 || c.Device.VBat > 255 {
		fail("device.vbat", "must be 0-255", c.Device.VBat)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		fail("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	return errors.Join(errs...)
}
