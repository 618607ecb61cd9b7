// Package device simulates the flight controller the console talks to when
// running on a host: a reboot reloads the persisted configuration and the
// status telemetry comes from a static profile.
package device

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/logging"
	"github.com/dshills/fcconsole/internal/store"
)

// Loader reads the persisted configuration.
type Loader interface {
	Load() (flight.Config, error)
}

// Profile describes the simulated hardware.
type Profile struct {
	CPUMHz       uint32
	Sensors      []flight.Sensor
	AccHardware  uint8
	BatteryCells uint8
	VBat         uint8 // 0.1V units
	BuildDate    string
	BuildTime    string
}

// DefaultProfile returns a 72MHz board with accelerometer, barometer and
// magnetometer on a 3S battery.
func DefaultProfile() Profile {
	return Profile{
		CPUMHz:       72,
		Sensors:      []flight.Sensor{flight.SensorAcc, flight.SensorBaro, flight.SensorMag},
		AccHardware:  2,
		BatteryCells: 3,
		VBat:         126,
		BuildDate:    "unknown",
		BuildTime:    "unknown",
	}
}

// Host is the simulated device.
type Host struct {
	mu      sync.Mutex
	store   Loader
	cfg     *flight.Config
	profile Profile
	logger  *logging.Logger
	started time.Time
	reboots int
	now     func() time.Time
}

// NewHost creates a device whose live configuration is cfg.
func NewHost(cfg *flight.Config, st Loader, profile Profile, logger *logging.Logger) *Host {
	if logger == nil {
		logger = logging.Null()
	}
	h := &Host{
		store:   st,
		cfg:     cfg,
		profile: profile,
		logger:  logger,
		now:     time.Now,
	}
	h.started = h.now()
	return h
}

// Reboot reloads the persisted configuration into cfg in place and resets
// the uptime. A corrupt store boots with the factory defaults, as the
// firmware does after a failed EEPROM check.
func (h *Host) Reboot(cfg *flight.Config) error {
	loaded, err := h.store.Load()
	switch {
	case errors.Is(err, store.ErrCorrupt):
		h.logger.Error("%v; booting with defaults", err)
		loaded = flight.Defaults()
	case err != nil:
		return fmt.Errorf("device: reboot: %w", err)
	}

	*cfg = loaded

	h.mu.Lock()
	h.started = h.now()
	h.reboots++
	n := h.reboots
	h.mu.Unlock()

	h.logger.Info("rebooted (%d)", n)
	return nil
}

// Reboots returns how many times the device has rebooted.
func (h *Host) Reboots() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reboots
}

// Telemetry reports the simulated readings.
func (h *Host) Telemetry() execctx.Telemetry {
	h.mu.Lock()
	uptime := h.now().Sub(h.started)
	h.mu.Unlock()

	var mask uint32
	for _, s := range h.profile.Sensors {
		mask |= s.Mask()
	}

	acc := h.profile.AccHardware
	if h.cfg.AccHardware != 0 {
		acc = h.cfg.AccHardware
	}

	return execctx.Telemetry{
		Uptime:       uptime,
		VBat:         h.profile.VBat,
		BatteryCells: h.profile.BatteryCells,
		CPUMHz:       h.profile.CPUMHz,
		Sensors:      mask,
		AccHardware:  acc,
		CycleTime:    h.cfg.Looptime,
	}
}

// BuildDate implements execctx.DeviceInterface.
func (h *Host) BuildDate() string {
	return h.profile.BuildDate
}

// BuildTime implements execctx.DeviceInterface.
func (h *Host) BuildTime() string {
	return h.profile.BuildTime
}
