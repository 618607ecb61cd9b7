package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/fcconsole/internal/config"
	"github.com/dshills/fcconsole/internal/config/loader"
	"github.com/dshills/fcconsole/internal/config/watcher"
	"github.com/dshills/fcconsole/internal/console"
	"github.com/dshills/fcconsole/internal/logging"
	"github.com/dshills/fcconsole/internal/store"
	"github.com/dshills/fcconsole/internal/transport"
)

type testEnv struct {
	app       *Application
	mock      *transport.MockTransport
	dir       string
	storePath string
	cfgPath   string
}

// newTestApp writes a config file into a temp dir and starts an
// application over a mock transport fed with input.
func newTestApp(t *testing.T, input, extra string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		dir:       dir,
		storePath: filepath.Join(dir, "flight.yaml"),
		cfgPath:   filepath.Join(dir, "fcconsole.toml"),
		mock:      transport.NewMock(input),
	}
	writeConfig(t, env.cfgPath, fmt.Sprintf(`
[store]
path = %q

[logging]
level = "debug"
file = %q
watch = false
%s`, env.storePath, filepath.Join(dir, "fcconsole.log"), extra))

	app, err := New(Options{
		ConfigPath: env.cfgPath,
		BuildDate:  "Oct 15 2026",
		BuildTime:  "09:30:00",
		Transport:  env.mock,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(app.Shutdown)
	env.app = app
	return env
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_HelpThenEOF(t *testing.T) {
	env := newTestApp(t, "help\r", "")

	if err := env.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := env.mock.Output()
	if !strings.HasPrefix(out, console.Banner+console.Prompt) {
		t.Errorf("output does not start with banner and prompt: %q", out)
	}
	if !strings.Contains(out, "Available commands:\r\n") {
		t.Errorf("help listing missing: %q", out)
	}
	if n := env.app.Dispatcher().Metrics().Snapshot().TotalDispatches; n != 1 {
		t.Errorf("TotalDispatches = %d, want 1", n)
	}
}

func TestShutdown_LogsDispatchSummary(t *testing.T) {
	env := newTestApp(t, "help\rhelp\rstatus\rbogus\r", "")
	if err := env.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	env.app.Shutdown()

	data, err := os.ReadFile(filepath.Join(env.dir, "fcconsole.log"))
	if err != nil {
		t.Fatal(err)
	}
	log := string(data)

	for _, want := range []string{
		"[INFO] fcconsole: dispatch summary",
		"commands=3",
		"unknown=1",
		"panics=0",
		"[INFO] fcconsole: command help {count=2,",
		"[INFO] fcconsole: command status {count=1,",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("log missing %q:\n%s", want, log)
		}
	}
}

type flushingMock struct {
	*transport.MockTransport
	flushes int
}

func (f *flushingMock) Flush() error {
	f.flushes++
	return nil
}

func TestRun_FlushesInputOnStartAndReboot(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fcconsole.toml")
	writeConfig(t, cfgPath, fmt.Sprintf(`
[store]
path = %q

[logging]
file = %q
watch = false
`, filepath.Join(dir, "flight.yaml"), filepath.Join(dir, "fcconsole.log")))

	tr := &flushingMock{MockTransport: transport.NewMock("exit\r")}
	app, err := New(Options{ConfigPath: cfgPath, Transport: tr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(app.Shutdown)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Once before entering, once when exit returns the console to idle.
	if tr.flushes != 2 {
		t.Errorf("flushes = %d, want 2", tr.flushes)
	}
}

func TestRun_VersionUsesBuildInfo(t *testing.T) {
	env := newTestApp(t, "version\r", "")
	if err := env.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(env.mock.Output(), "Afro32 CLI version 2.1 Oct 15 2026 / 09:30:00") {
		t.Errorf("version line missing: %q", env.mock.Output())
	}
}

func TestRun_SaveExitsOnReboot(t *testing.T) {
	env := newTestApp(t, "set looptime=2000\rsave\rhelp\r", "\n[console]\nexit_on_reboot = true\n")

	err := env.app.Run(context.Background())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}

	out := env.mock.Output()
	if !strings.Contains(out, "looptime set to 2000") {
		t.Errorf("set confirmation missing: %q", out)
	}
	if !strings.Contains(out, "Saving...\r\nRebooting...") {
		t.Errorf("save output missing: %q", out)
	}
	if strings.Contains(out, "Available commands:") {
		t.Error("input after reboot was processed")
	}

	saved, err := store.New(env.storePath, nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.Looptime != 2000 {
		t.Errorf("stored looptime = %d, want 2000", saved.Looptime)
	}
	if env.app.Flight().Looptime != 2000 {
		t.Errorf("live looptime = %d after reboot", env.app.Flight().Looptime)
	}
	if env.app.Device().Reboots() != 1 {
		t.Errorf("Reboots = %d", env.app.Device().Reboots())
	}
}

func TestRun_ExitDiscardsAndReenters(t *testing.T) {
	env := newTestApp(t, "set looptime=2000\rexit\rhelp\r#", "")

	if err := env.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := env.mock.Output()
	if strings.Count(out, console.Banner) != 2 {
		t.Errorf("banner count = %d, want 2: %q", strings.Count(out, console.Banner), out)
	}
	if strings.Contains(out, "Available commands:") {
		t.Error("idle session dispatched a command")
	}
	if env.app.Session().State() != console.StateEditing {
		t.Errorf("State = %v, want editing", env.app.Session().State())
	}
	if env.app.Flight().Looptime == 2000 {
		t.Error("exit kept the unsaved change")
	}
}

func TestRun_NoAutoEnter(t *testing.T) {
	env := newTestApp(t, "help\r", "\n[console]\nauto_enter = false\n")
	if err := env.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out := env.mock.Output(); out != "" {
		t.Errorf("idle session wrote %q", out)
	}
}

func TestRun_TransportError(t *testing.T) {
	env := newTestApp(t, "", "")
	env.mock.ReadErr = errors.New("port unplugged")

	err := env.app.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "port unplugged") {
		t.Errorf("Run() = %v", err)
	}
}

func TestRun_AlreadyRunning(t *testing.T) {
	env := newTestApp(t, "", "")
	env.app.running.Store(true)
	if err := env.app.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Run() = %v, want ErrAlreadyRunning", err)
	}
}

func TestShutdown_ClosesTransport(t *testing.T) {
	env := newTestApp(t, "", "")
	env.app.Shutdown()
	env.app.Shutdown()
	if !env.mock.Closed {
		t.Error("transport not closed")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		StorePath:  filepath.Join(dir, "flight.yaml"),
		LogLevel:   "loud",
		Transport:  transport.NewMock(""),
	})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "config" {
		t.Fatalf("New() = %v, want config InitError", err)
	}
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("New() = %v, want ErrValidationFailed", err)
	}
}

func TestNew_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fcconsole.toml")
	writeConfig(t, path, "[store\n")

	_, err := New(Options{ConfigPath: path, Transport: transport.NewMock("")})
	var pe *loader.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("New() = %v, want ParseError", err)
	}
}

func TestNew_CorruptStoreStartsWithDefaults(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "flight.yaml")
	writeConfig(t, storePath, "config: [not, a, map\n")

	app, err := New(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		StorePath:  storePath,
		LogFile:    filepath.Join(dir, "fcconsole.log"),
		Transport:  transport.NewMock(""),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Shutdown()
	if app.Flight().Looptime == 0 {
		t.Error("expected default looptime")
	}
}

func TestReloadConfig_AppliesLogLevel(t *testing.T) {
	env := newTestApp(t, "", "")
	if got := env.app.Logger().Level(); got != logging.LevelDebug {
		t.Fatalf("initial level = %v", got)
	}

	writeConfig(t, env.cfgPath, fmt.Sprintf("[store]\npath = %q\n\n[logging]\nlevel = \"warn\"\nfile = %q\n",
		env.storePath, filepath.Join(env.dir, "fcconsole.log")))
	env.app.reloadConfig(watcher.Event{Path: env.cfgPath, Op: watcher.OpWrite})

	if got := env.app.Logger().Level(); got != logging.LevelWarn {
		t.Errorf("level after reload = %v, want warn", got)
	}
}

func TestReloadConfig_KeepsSettingsOnError(t *testing.T) {
	env := newTestApp(t, "", "")
	writeConfig(t, env.cfgPath, "[logging]\nlevel = \"chatty\"\n")

	env.app.reloadConfig(watcher.Event{Path: env.cfgPath, Op: watcher.OpWrite})
	if got := env.app.Logger().Level(); got != logging.LevelDebug {
		t.Errorf("level = %v, want unchanged debug", got)
	}

	env.app.reloadConfig(watcher.Event{Path: env.cfgPath, Op: watcher.OpRemove})
	if env.app.Config().Logging.Level != "debug" {
		t.Errorf("config replaced after remove: %q", env.app.Config().Logging.Level)
	}
}

func TestEffectiveLevel(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		file  string
		level string
		want  logging.Level
	}{
		{"serial keeps level", "serial", "", "debug", logging.LevelDebug},
		{"terminal raises to error", "terminal", "", "info", logging.LevelError},
		{"terminal with file keeps level", "terminal", "x.log", "info", logging.LevelInfo},
		{"invalid falls back to info", "serial", "", "loud", logging.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Transport.Kind = tt.kind
			cfg.Logging.File = tt.file
			cfg.Logging.Level = tt.level
			if got := effectiveLevel(cfg); got != tt.want {
				t.Errorf("effectiveLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(cfg, Options{Port: "/dev/ttyUSB1", Baud: 57600, StorePath: "x.yaml", LogLevel: "warn"})

	if cfg.Transport.Kind != "serial" || cfg.Transport.Port != "/dev/ttyUSB1" || cfg.Transport.Baud != 57600 {
		t.Errorf("Transport = %+v", cfg.Transport)
	}
	if cfg.Store.Path != "x.yaml" || cfg.Logging.Level != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}

	applyOverrides(cfg, Options{Terminal: true})
	if cfg.Transport.Kind != "terminal" {
		t.Errorf("Kind = %q, want terminal", cfg.Transport.Kind)
	}
}

func TestDeviceProfile(t *testing.T) {
	dc := config.Default().Device
	dc.Sensors = []string{"acc", "GPS"}

	p, err := deviceProfile(dc, Options{BuildDate: "d", BuildTime: "t"})
	if err != nil {
		t.Fatalf("deviceProfile: %v", err)
	}
	if len(p.Sensors) != 2 || p.CPUMHz != 72 || p.BuildDate != "d" || p.BuildTime != "t" {
		t.Errorf("profile = %+v", p)
	}

	dc.Sensors = []string{"LIDAR"}
	if _, err := deviceProfile(dc, Options{}); err == nil {
		t.Error("expected error for unknown sensor")
	}
}

func TestInitError(t *testing.T) {
	inner := errors.New("boom")
	err := &InitError{Component: "transport", Err: inner}
	if got := err.Error(); got != "init transport: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap did not expose inner error")
	}
}
