// Package config provides the host-side configuration of the console: which
// transport to open, where the flight configuration is stored, how the
// session starts, the simulated device profile and logging.
//
// # Sources
//
// Configuration is layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← applied by the caller
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← FCCONSOLE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← fcconsole.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Configuration File
//
//	[transport]
//	kind = "serial"
//	port = "/dev/ttyUSB0"
//	baud = 115200
//	read_timeout_ms = 50
//
//	[store]
//	path = "flight.yaml"
//
//	[console]
//	auto_enter = true
//	exit_on_reboot = false
//
//	[logging]
//	level = "info"
//	watch = true
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading, map merging
//   - watcher: fsnotify-based change notification for live reload
package config
