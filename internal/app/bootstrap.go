package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dshills/fcconsole/internal/config"
	"github.com/dshills/fcconsole/internal/config/watcher"
	"github.com/dshills/fcconsole/internal/console"
	"github.com/dshills/fcconsole/internal/device"
	"github.com/dshills/fcconsole/internal/dispatcher"
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/dispatcher/handlers"
	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/logging"
	"github.com/dshills/fcconsole/internal/store"
	"github.com/dshills/fcconsole/internal/transport"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app      *Application
	opts     Options
	cleanups []func()
}

func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{app: app, opts: app.opts}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initConfig,
		b.initLogger,
		b.initStore,
		b.initDevice,
		b.initTransport,
		b.initSession,
		b.initWatcher,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	b.app.logger.Info("initialized (store %s)", b.app.store.Path())
	return nil
}

// cleanup releases initialized components in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.cleanups) - 1; i >= 0; i-- {
		b.cleanups[i]()
	}
}

func (b *bootstrapper) initConfig() error {
	path := b.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	applyOverrides(cfg, b.opts)
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	b.app.configPath = path
	b.app.config = cfg
	return nil
}

// applyOverrides copies the non-zero command line options into cfg.
func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Port != "" {
		cfg.Transport.Kind = string(transport.KindSerial)
		cfg.Transport.Port = opts.Port
	}
	if opts.Terminal {
		cfg.Transport.Kind = string(transport.KindTerminal)
	}
	if opts.Baud != 0 {
		cfg.Transport.Baud = opts.Baud
	}
	if opts.StorePath != "" {
		cfg.Store.Path = opts.StorePath
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
}

func (b *bootstrapper) initLogger() error {
	cfg := b.app.config
	logCfg := logging.DefaultConfig()

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return &InitError{Component: "logging", Err: err}
		}
		logCfg.Output = f
		b.app.logCloser = f.Close
		b.cleanups = append(b.cleanups, func() { f.Close() })
	}

	b.app.sessionID = uuid.NewString()
	b.app.logger = logging.New(logCfg).WithField("session", b.app.sessionID)
	b.app.logger.SetLevel(effectiveLevel(cfg))
	return nil
}

// effectiveLevel is the configured level, raised to ERROR when logs would
// share the operator's terminal.
func effectiveLevel(cfg *config.Config) logging.Level {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	if cfg.Logging.File == "" && cfg.Transport.Kind == string(transport.KindTerminal) && level < logging.LevelError {
		level = logging.LevelError
	}
	return level
}

func (b *bootstrapper) initStore() error {
	app := b.app
	app.store = store.New(app.config.Store.Path, app.logger.WithComponent("store"))

	loaded, err := app.store.Load()
	if err != nil {
		app.logger.Error("%v; starting with defaults", err)
		loaded = flight.Defaults()
	}
	app.flight = &loaded
	app.registry = flight.Settings(app.flight)
	return nil
}

func (b *bootstrapper) initDevice() error {
	app := b.app
	profile, err := deviceProfile(app.config.Device, b.opts)
	if err != nil {
		return &InitError{Component: "device", Err: err}
	}
	app.device = device.NewHost(app.flight, app.store, profile, app.logger.WithComponent("device"))
	return nil
}

// deviceProfile converts the device section into a simulated profile.
func deviceProfile(dc config.DeviceConfig, opts Options) (device.Profile, error) {
	p := device.DefaultProfile()
	p.CPUMHz = uint32(dc.CPUMHz)
	p.AccHardware = uint8(dc.AccHardware)
	p.BatteryCells = uint8(dc.BatteryCells)
	p.VBat = uint8(dc.VBat)
	p.Sensors = p.Sensors[:0]
	for _, name := range dc.Sensors {
		s, ok := flight.SensorByName(name)
		if !ok {
			return device.Profile{}, fmt.Errorf("unknown sensor %q", name)
		}
		p.Sensors = append(p.Sensors, s)
	}
	if opts.BuildDate != "" {
		p.BuildDate = opts.BuildDate
	}
	if opts.BuildTime != "" {
		p.BuildTime = opts.BuildTime
	}
	return p, nil
}

func (b *bootstrapper) initTransport() error {
	app := b.app
	if b.opts.Transport != nil {
		app.transport = b.opts.Transport
		return nil
	}

	tc := app.config.Transport
	t, err := transport.Open(transport.Options{
		Kind:     transport.Kind(tc.Kind),
		Port:     tc.Port,
		BaudRate: tc.Baud,
		Timeout:  tc.ReadTimeout(),
	})
	if err != nil {
		return &InitError{Component: "transport", Err: err}
	}
	app.transport = t
	b.cleanups = append(b.cleanups, func() { t.Close() })
	app.logger.Info("opened %s transport %s", tc.Kind, t.Name())
	return nil
}

func (b *bootstrapper) initSession() error {
	app := b.app

	d := dispatcher.New(handlers.Commands(), dispatcher.DefaultConfig().WithMetrics())
	app.dispatcher = d

	app.execCtx = execctx.New(execctx.NewOutput(app.transport)).
		WithConfig(app.flight, app.registry).
		WithStore(app.store).
		WithDevice(app.device).
		WithLogger(app.logger.WithComponent("commands"))

	app.session = console.New(d, app.execCtx, console.Options{
		StopOnLeave: app.config.Console.ExitOnReboot,
		OnLeave:     app.flushInput,
		Logger:      app.logger.WithComponent("console"),
	})
	return nil
}

// initWatcher is best effort: a missing config directory only disables
// hot reload.
func (b *bootstrapper) initWatcher() error {
	app := b.app
	if !app.config.Logging.Watch {
		return nil
	}
	w, err := watcher.New(app.configPath, watcher.WithErrorHandler(func(err error) {
		app.logger.Warn("config watcher: %v", err)
	}))
	if err != nil {
		app.logger.Warn("config hot reload disabled: %v", err)
		return nil
	}
	w.OnChange(func(ev watcher.Event) {
		app.reloadConfig(ev)
	})
	app.watcher = w
	b.cleanups = append(b.cleanups, func() { w.Stop() })
	return nil
}
