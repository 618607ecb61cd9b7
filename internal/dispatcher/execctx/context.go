// Package execctx provides the execution context for command handlers.
package execctx

import (
	"time"

	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/logging"
	"github.com/dshills/fcconsole/internal/settings"
)

// PersistenceInterface abstracts the store the configuration is written to.
type PersistenceInterface interface {
	// Save persists cfg.
	Save(cfg *flight.Config) error
	// ResetDefaults replaces cfg with the factory configuration and
	// persists it.
	ResetDefaults(cfg *flight.Config) error
}

// DeviceInterface abstracts the flight controller the console runs on.
type DeviceInterface interface {
	// Reboot restarts the device. On return cfg holds the configuration the
	// device booted with.
	Reboot(cfg *flight.Config) error
	// Telemetry returns the live readings reported by "status".
	Telemetry() Telemetry
	// BuildDate and BuildTime identify the firmware build for "version".
	BuildDate() string
	BuildTime() string
}

// SessionInterface is the part of the console session a handler may drive.
type SessionInterface interface {
	// Leave returns the session to Idle. The prompt is not reprinted after
	// the current command.
	Leave()
}

// Telemetry is a snapshot of device state.
type Telemetry struct {
	Uptime       time.Duration
	VBat         uint8 // 0.1V units
	BatteryCells uint8
	CPUMHz       uint32
	Sensors      uint32 // flight.Sensor mask
	AccHardware  uint8
	CycleTime    uint16 // microseconds
	I2CErrors    uint16
}

// ExecutionContext is threaded through every command handler. It owns no
// global state: a test can build any number of independent contexts.
type ExecutionContext struct {
	// Out receives all operator-visible text.
	Out *Output

	// Config is the live flight configuration.
	Config *flight.Config

	// Settings is the registry bound to Config.
	Settings *settings.Registry

	// Store persists Config.
	Store PersistenceInterface

	// Device reboots and reports on the flight controller.
	Device DeviceInterface

	// Session is the console session that dispatched the command.
	Session SessionInterface

	// Logger receives host-side diagnostics.
	Logger *logging.Logger
}

// New creates an execution context writing to out.
func New(out *Output) *ExecutionContext {
	return &ExecutionContext{
		Out:    out,
		Logger: logging.Null(),
	}
}

// WithConfig returns the context with the configuration and its registry set.
func (ctx *ExecutionContext) WithConfig(cfg *flight.Config, reg *settings.Registry) *ExecutionContext {
	ctx.Config = cfg
	ctx.Settings = reg
	return ctx
}

// WithStore returns the context with the persistence collaborator set.
func (ctx *ExecutionContext) WithStore(store PersistenceInterface) *ExecutionContext {
	ctx.Store = store
	return ctx
}

// WithDevice returns the context with the device set.
func (ctx *ExecutionContext) WithDevice(dev DeviceInterface) *ExecutionContext {
	ctx.Device = dev
	return ctx
}

// WithSession returns the context with the session set.
func (ctx *ExecutionContext) WithSession(s SessionInterface) *ExecutionContext {
	ctx.Session = s
	return ctx
}

// WithLogger returns the context with the logger set.
func (ctx *ExecutionContext) WithLogger(l *logging.Logger) *ExecutionContext {
	if l != nil {
		ctx.Logger = l
	}
	return ctx
}

// Leave returns the session to Idle, if there is one.
func (ctx *ExecutionContext) Leave() {
	if ctx.Session != nil {
		ctx.Session.Leave()
	}
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Out == nil {
		return ErrMissingOutput
	}
	if ctx.Config == nil {
		return ErrMissingConfig
	}
	if ctx.Settings == nil {
		return ErrMissingSettings
	}
	return nil
}

// ValidateForDevice checks that the context can persist and reboot.
func (ctx *ExecutionContext) ValidateForDevice() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Store == nil {
		return ErrMissingStore
	}
	if ctx.Device == nil {
		return ErrMissingDevice
	}
	return nil
}
