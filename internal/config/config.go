package config

import (
	"fmt"
	"time"

	"github.com/dshills/fcconsole/internal/config/loader"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "fcconsole.toml"

// Config is the complete console configuration.
type Config struct {
	Transport TransportConfig `toml:"transport"`
	Store     StoreConfig     `toml:"store"`
	Console   ConsoleConfig   `toml:"console"`
	Device    DeviceConfig    `toml:"device"`
	Logging   LoggingConfig   `toml:"logging"`
}

// TransportConfig selects and parameterises the operator byte stream.
type TransportConfig struct {
	// Kind is "serial" or "terminal".
	Kind string `toml:"kind"`

	// Port is the serial device path.
	Port string `toml:"port"`

	// Baud is the serial line rate.
	Baud int `toml:"baud"`

	// ReadTimeoutMS bounds a single serial read.
	ReadTimeoutMS int `toml:"read_timeout_ms"`
}

// ReadTimeout returns ReadTimeoutMS as a duration.
func (t TransportConfig) ReadTimeout() time.Duration {
	return time.Duration(t.ReadTimeoutMS) * time.Millisecond
}

// StoreConfig locates the persisted flight configuration.
type StoreConfig struct {
	Path string `toml:"path"`
}

// ConsoleConfig controls the session lifecycle.
type ConsoleConfig struct {
	// AutoEnter starts the session in editing instead of waiting for '#'.
	AutoEnter bool `toml:"auto_enter"`

	// ExitOnReboot ends the process when a command reboots the device.
	ExitOnReboot bool `toml:"exit_on_reboot"`
}

// DeviceConfig describes the simulated board reported by status.
type DeviceConfig struct {
	CPUMHz       int      `toml:"cpu_mhz"`
	Sensors      []string `toml:"sensors"`
	AccHardware  int      `toml:"acc_hardware"`
	BatteryCells int      `toml:"battery_cells"`
	VBat         int      `toml:"vbat"`
}

// LoggingConfig controls host-side diagnostics.
type LoggingConfig struct {
	Level string `toml:"level"`

	// File receives log output. Empty means stderr.
	File string `toml:"file"`

	// Watch hot-reloads the level when the config file changes.
	Watch bool `toml:"watch"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Transport: TransportConfig{
			Kind:          "terminal",
			Baud:          115200,
			ReadTimeoutMS: 50,
		},
		Store: StoreConfig{
			Path: "flight.yaml",
		},
		Console: ConsoleConfig{
			AutoEnter: true,
		},
		Device: DeviceConfig{
			CPUMHz:       72,
			Sensors:      []string{"ACC", "BARO", "MAG"},
			AccHardware:  2,
			BatteryCells: 3,
			VBat:         126,
		},
		Logging: LoggingConfig{
			Level: "info",
			Watch: true,
		},
	}
}

// Load reads the config file at path over the defaults and applies the
// FCCONSOLE_* environment. A missing file is not an error. The result is
// not validated so callers can apply flag overrides first.
func Load(path string) (*Config, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load with an explicit file system.
func LoadFS(fsys loader.FileSystem, path string) (*Config, error) {
	merged, err := loader.Encode(Default())
	if err != nil {
		return nil, err
	}

	file, err := loader.NewTOMLLoaderWithFS(fsys, path).Load()
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, file)

	env, err := loader.NewEnvLoader(loader.EnvPrefix).Load()
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, env)

	cfg := &Config{}
	if err := loader.Decode(merged, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
