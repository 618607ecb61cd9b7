// Package app wires the console together: configuration, logging, the
// flight configuration store, the simulated device, the command table, the
// session and its transport. It owns the application lifecycle.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dshills/fcconsole/internal/config"
	"github.com/dshills/fcconsole/internal/config/watcher"
	"github.com/dshills/fcconsole/internal/console"
	"github.com/dshills/fcconsole/internal/device"
	"github.com/dshills/fcconsole/internal/dispatcher"
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/logging"
	"github.com/dshills/fcconsole/internal/settings"
	"github.com/dshills/fcconsole/internal/store"
	"github.com/dshills/fcconsole/internal/transport"
)

// Options configures the application. Non-zero fields override the
// config file and environment.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Port selects the serial transport on this device.
	Port string

	// Baud overrides the serial line rate.
	Baud int

	// Terminal selects the local terminal transport.
	Terminal bool

	// StorePath overrides where the flight configuration is persisted.
	StorePath string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogFile redirects logs to a file.
	LogFile string

	// BuildDate and BuildTime are reported by the version command.
	BuildDate string
	BuildTime string

	// Transport replaces the configured transport. Used by tests.
	Transport transport.Transport
}

// Application is the central coordinator for all console components.
type Application struct {
	mu sync.Mutex

	opts       Options
	configPath string
	config     *config.Config

	logger    *logging.Logger
	logCloser func() error
	sessionID string

	store      *store.Store
	flight     *flight.Config
	registry   *settings.Registry
	device     *device.Host
	dispatcher *dispatcher.Dispatcher
	execCtx    *execctx.ExecutionContext
	session    *console.Session
	transport  transport.Transport
	watcher    *watcher.Watcher

	running  atomic.Bool
	shutdown sync.Once
}

// New creates an Application with every component initialized.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Config returns the effective console configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// Flight returns the live flight configuration.
func (app *Application) Flight() *flight.Config {
	return app.flight
}

// Session returns the console session.
func (app *Application) Session() *console.Session {
	return app.session
}

// Device returns the simulated device.
func (app *Application) Device() *device.Host {
	return app.device
}

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Run feeds the transport into the session until the input ends, ctx is
// cancelled, or (with exit_on_reboot) a command reboots the device, which
// is reported as ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.watcher != nil {
		if err := app.watcher.Start(); err != nil {
			app.logger.Warn("config watcher: %v", err)
		}
	}

	app.flushInput()
	if app.Config().Console.AutoEnter {
		app.session.Enter()
	}

	app.logger.Info("console running on %s", app.transport.Name())
	err := app.session.Run(ctx, app.transport)
	switch {
	case errors.Is(err, console.ErrLeft):
		app.logger.Info("device rebooted, exiting")
		return ErrQuit
	case errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		app.logger.Error("%v", err)
		return err
	}
	app.logger.Info("input closed")
	return nil
}

// summaryTopCommands bounds the per-command lines logged at shutdown.
const summaryTopCommands = 5

// Shutdown stops the watcher and closes the transport and log file. It is
// safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		app.logger.Info("shutting down")
		app.logDispatchSummary()
		if app.watcher != nil {
			if err := app.watcher.Stop(); err != nil {
				app.logger.Warn("config watcher: %v", err)
			}
		}
		if app.transport != nil {
			if err := app.transport.Close(); err != nil {
				app.logger.Error("close %s: %v", app.transport.Name(), err)
			}
		}
		if app.logCloser != nil {
			_ = app.logCloser()
		}
	})
}

// flushInput drops input the transport buffered before the console was
// ready for it.
func (app *Application) flushInput() {
	if err := transport.Flush(app.transport); err != nil {
		app.logger.Warn("%v", err)
	}
}

// logDispatchSummary logs the session's command counters and the most used
// commands.
func (app *Application) logDispatchSummary() {
	if app.dispatcher == nil {
		return
	}
	m := app.dispatcher.Metrics()
	if m == nil {
		return
	}
	snap := m.Snapshot()
	app.logger.WithFields(map[string]any{
		"commands": snap.TotalDispatches,
		"unknown":  snap.TotalUnknown,
		"panics":   snap.TotalPanics,
		"avg":      snap.AverageDuration,
	}).Info("dispatch summary")
	for _, cm := range m.TopCommands(summaryTopCommands) {
		app.logger.WithFields(map[string]any{
			"count": cm.DispatchCount,
			"min":   cm.MinDuration,
			"max":   cm.MaxDuration,
		}).Info("command %s", cm.Name)
	}
}
