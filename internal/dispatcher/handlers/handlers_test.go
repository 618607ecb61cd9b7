package handlers

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/fcconsole/internal/dispatcher"
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
)

type fakeStore struct {
	saved   *flight.Config
	saves   int
	resets  int
	failErr error
}

func (s *fakeStore) Save(cfg *flight.Config) error {
	if s.failErr != nil {
		return s.failErr
	}
	c := *cfg
	s.saved = &c
	s.saves++
	return nil
}

func (s *fakeStore) ResetDefaults(cfg *flight.Config) error {
	if s.failErr != nil {
		return s.failErr
	}
	*cfg = flight.Defaults()
	s.resets++
	return s.Save(cfg)
}

type fakeDevice struct {
	store   *fakeStore
	reboots int
	tel     execctx.Telemetry
}

func (d *fakeDevice) Reboot(cfg *flight.Config) error {
	d.reboots++
	if d.store.saved != nil {
		*cfg = *d.store.saved
	} else {
		*cfg = flight.Defaults()
	}
	return nil
}

func (d *fakeDevice) Telemetry() execctx.Telemetry { return d.tel }
func (d *fakeDevice) BuildDate() string            { return "Oct 15 2026" }
func (d *fakeDevice) BuildTime() string            { return "12:00:00" }

type fakeSession struct{ left bool }

func (s *fakeSession) Leave() { s.left = true }

type env struct {
	out     *bytes.Buffer
	cfg     *flight.Config
	store   *fakeStore
	device  *fakeDevice
	session *fakeSession
	ctx     *execctx.ExecutionContext
	d       *dispatcher.Dispatcher
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		out:     &bytes.Buffer{},
		store:   &fakeStore{},
		session: &fakeSession{},
	}
	cfg := flight.Defaults()
	e.cfg = &cfg
	e.device = &fakeDevice{store: e.store}
	e.ctx = execctx.New(execctx.NewOutput(e.out)).
		WithConfig(e.cfg, flight.Settings(e.cfg)).
		WithStore(e.store).
		WithDevice(e.device).
		WithSession(e.session)
	e.d = dispatcher.NewWithDefaults(Commands())
	return e
}

// run dispatches line and returns the output it produced.
func (e *env) run(line string) string {
	e.out.Reset()
	e.d.Dispatch(e.ctx, line)
	return e.out.String()
}

func TestCommands_Sorted(t *testing.T) {
	table := Commands()
	want := []string{"cmix", "defaults", "exit", "feature", "help", "map", "mixer", "save", "set", "status", "version"}
	cmds := table.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i, c := range cmds {
		if c.Name != want[i] {
			t.Errorf("command %d = %s, want %s", i, c.Name, want[i])
		}
	}
}

func TestHelp(t *testing.T) {
	e := newEnv(t)
	out := e.run("help")

	if !strings.HasPrefix(out, "Available commands:\r\n") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "cmix\tdesign custom mixer\r\n") {
		t.Errorf("missing cmix line: %q", out)
	}
	if !strings.Contains(out, "version\t\r\n") {
		t.Errorf("missing version line: %q", out)
	}
}

func TestSet(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		line string
		want string
	}{
		{"set midrc=1500", "midrc set to 1500"},
		{"set midrc=5000", "ERR: Value assignment out of range\r\n"},
		{"set midrc = 1600", "midrc set to 1600"},
		{"set MIDRC=1550", "midrc set to 1550"},
		{"set loop=2500", "looptime set to 2500"},
		{"set nosuch=1", "ERR: Unknown variable name\r\n"},
		{"set =1", "ERR: Unknown variable name\r\n"},
		{"set midrc=abc", "ERR: Value assignment out of range\r\n"},
		{"set midrc", "midrc = 1550\r\n"},
		{"set baro_cf=0.5", "baro_cf set to 0.5000000"},
		{"set baro_cf", "baro_cf = 0.5000000\r\n"},
		{"set yaw_direction=-1", "yaw_direction set to -1"},
		{"set ledPattern=xFFFFFFFF", "ledPattern set to 4294967295"},
	}

	for _, tt := range tests {
		if got := e.run(tt.line); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSet_OutOfRangeKeepsValue(t *testing.T) {
	e := newEnv(t)

	e.run("set midrc=1500")
	e.run("set midrc=5000")

	if e.cfg.MidRC != 1500 {
		t.Errorf("MidRC = %d, want 1500", e.cfg.MidRC)
	}
	if out := e.run("set"); !strings.Contains(out, "\r\nmidrc = 1500\r\n") {
		t.Errorf("listing does not show midrc = 1500: %q", out)
	}
}

func TestSet_List(t *testing.T) {
	e := newEnv(t)

	out := e.run("set")
	if !strings.HasPrefix(out, "Current settings: \r\ndeadband = 0\r\n") {
		t.Errorf("unexpected listing start: %q", out[:40])
	}
	if !strings.HasSuffix(out, "ledPattern = 0\r\n") {
		t.Errorf("unexpected listing end")
	}

	out = e.run("set *")
	if !strings.Contains(out, "midrc = 1500 1200 1700\r\n") {
		t.Errorf("bounded listing missing midrc bounds")
	}
	if !strings.Contains(out, "ledPattern = 0 0 0\r\n") {
		t.Errorf("bounded listing missing ledPattern")
	}
}

func TestFeature(t *testing.T) {
	e := newEnv(t)

	if got := e.run("feature"); got != "Enabled features: VBAT \r\n" {
		t.Errorf("feature: %q", got)
	}
	if got := e.run("feature list"); !strings.HasPrefix(got, "Available features: PPM VBAT ") {
		t.Errorf("feature list: %q", got)
	}
	if got := e.run("feature li"); !strings.HasPrefix(got, "Available features: ") {
		t.Errorf("feature li: %q", got)
	}
	if got := e.run("feature gps"); got != "Enabled GPS\r\n" {
		t.Errorf("feature gps: %q", got)
	}
	if !e.cfg.FeatureEnabled(flight.FeatureGPS) {
		t.Error("GPS not enabled")
	}
	if got := e.run("feature -VBAT"); got != "Disabled VBAT\r\n" {
		t.Errorf("feature -VBAT: %q", got)
	}
	if e.cfg.FeatureEnabled(flight.FeatureVBat) {
		t.Error("VBAT still enabled")
	}

	before := e.cfg.EnabledFeatures
	for _, line := range []string{"feature NOPE", "feature -"} {
		if got := e.run(line); got != "Invalid feature name...\r\n" {
			t.Errorf("%s: %q", line, got)
		}
	}
	if e.cfg.EnabledFeatures != before {
		t.Error("invalid feature name changed the mask")
	}
}

func TestMixer(t *testing.T) {
	e := newEnv(t)

	if got := e.run("mixer"); got != "Current mixer: QUADX\r\n" {
		t.Errorf("mixer: %q", got)
	}
	if got := e.run("mixer list"); !strings.HasPrefix(got, "Available mixers: TRI QUADP QUADX ") {
		t.Errorf("mixer list: %q", got)
	}
	if got := e.run("mixer hex6x"); got != "Mixer set to HEX6X\r\n" {
		t.Errorf("mixer hex6x: %q", got)
	}
	if e.cfg.Mixer() != flight.MixerHex6X {
		t.Errorf("Mixer() = %v", e.cfg.Mixer())
	}
	if got := e.run("mixer WRONG"); got != "Invalid mixer type...\r\n" {
		t.Errorf("mixer WRONG: %q", got)
	}
	if e.cfg.Mixer() != flight.MixerHex6X {
		t.Error("invalid mixer name changed the mixer")
	}
}

func TestMap(t *testing.T) {
	e := newEnv(t)

	if got := e.run("map"); got != "Current assignment: AETR1234\r\n" {
		t.Errorf("map: %q", got)
	}
	if got := e.run("map taer1234"); got != "Current assignment: TAER1234\r\n" {
		t.Errorf("map taer1234: %q", got)
	}
	if got := e.run("map TAER1233"); got != "Must be any order of AETR1234\r\n" {
		t.Errorf("map TAER1233: %q", got)
	}
	if got := e.run("map AET"); got != "Current assignment: TAER1234\r\n" {
		t.Errorf("map AET: %q", got)
	}
}

func TestCMix_AtomicRowWrite(t *testing.T) {
	e := newEnv(t)

	out := e.run("cmix 1 1.0 0.0 0.0 0.0")
	if !strings.Contains(out, "#1:\t1.0000000\t0.0000000\t0.0000000\t0.0000000\r\n") {
		t.Errorf("row not printed: %q", out)
	}

	before := e.cfg.CustomMixer[0]
	out = e.run("cmix 1 1.0 0.0")
	if out != "Wrong number of arguments, needs idx thr roll pitch yaw\r\n" {
		t.Errorf("partial row: %q", out)
	}
	if e.cfg.CustomMixer[0] != before {
		t.Errorf("row 1 changed to %+v", e.cfg.CustomMixer[0])
	}
}

func TestCMix_Index(t *testing.T) {
	e := newEnv(t)
	want := "Motor number must be between 1 and 12\r\n"

	for _, line := range []string{"cmix 0 1 0 0 0", "cmix 13 1 0 0 0", "cmix x 1 0 0 0", "cmix -1 1 0 0 0"} {
		if got := e.run(line); got != want {
			t.Errorf("%s: %q", line, got)
		}
	}
	if got := len(e.cfg.ActiveMotors()); got != 0 {
		t.Errorf("ActiveMotors() len = %d, want 0", got)
	}
}

func TestCMix_LoadAndSanity(t *testing.T) {
	e := newEnv(t)

	out := e.run("cmix load quadx")
	if !strings.HasPrefix(out, "Loaded QUADX mix...\r\nCustom mixer: \r\nMotor\tThr\tRoll\tPitch\tYaw\r\n") {
		t.Errorf("load output: %q", out)
	}
	if !strings.HasSuffix(out, "Sanity check:\tOK\tOK\tOK\t\r\n") {
		t.Errorf("sanity: %q", out)
	}
	if strings.Count(out, "#") != 4 {
		t.Errorf("expected 4 rows: %q", out)
	}

	out = e.run("cmix 1 1 1 0 -1")
	if !strings.HasSuffix(out, "Sanity check:\tNG\tNG\tOK\t\r\n") {
		t.Errorf("sanity after edit: %q", out)
	}

	if got := e.run("cmix load "); got != "Invalid mixer type...\r\n" {
		t.Errorf("empty load: %q", got)
	}
	if got := e.run("cmix load nothing"); got != "Invalid mixer type...\r\n" {
		t.Errorf("bad load: %q", got)
	}
}

func TestCMix_EmptyTable(t *testing.T) {
	e := newEnv(t)
	want := "Custom mixer: \r\nMotor\tThr\tRoll\tPitch\tYaw\r\nSanity check:\tOK\tOK\tOK\t\r\n"
	if got := e.run("cmix"); got != want {
		t.Errorf("cmix: %q", got)
	}
}

func TestStatus(t *testing.T) {
	e := newEnv(t)
	e.device.tel = execctx.Telemetry{
		Uptime:       90 * time.Second,
		VBat:         126,
		BatteryCells: 3,
		CPUMHz:       72,
		Sensors:      flight.SensorAcc.Mask() | flight.SensorBaro.Mask(),
		AccHardware:  2,
		CycleTime:    3000,
		I2CErrors:    1,
	}

	want := "System Uptime: 90 seconds, Voltage: 126 * 0.1V (3S battery)\r\n" +
		"CPU 72MHz, detected sensors: ACC BARO ACCHW: MPU6050\r\n" +
		"Cycle Time: 3000, I2C Errors: 1\r\n"
	if got := e.run("status"); got != want {
		t.Errorf("status:\n got %q\nwant %q", got, want)
	}
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	if got := e.run("version"); got != "Afro32 CLI version 2.1 Oct 15 2026 / 12:00:00" {
		t.Errorf("version: %q", got)
	}
}

func TestSave(t *testing.T) {
	e := newEnv(t)
	e.run("set midrc=1600")

	if got := e.run("save"); got != "Saving...\r\nRebooting..." {
		t.Errorf("save: %q", got)
	}
	if e.store.saves != 1 || e.device.reboots != 1 {
		t.Errorf("saves=%d reboots=%d", e.store.saves, e.device.reboots)
	}
	if !e.session.left {
		t.Error("session did not leave")
	}
	if e.cfg.MidRC != 1600 {
		t.Errorf("MidRC after reboot = %d, want 1600", e.cfg.MidRC)
	}
}

func TestSave_Failure(t *testing.T) {
	e := newEnv(t)
	e.store.failErr = errors.New("disk full")

	if got := e.run("save"); got != "Saving...\r\nERR: Save failed\r\n" {
		t.Errorf("save: %q", got)
	}
	if e.device.reboots != 0 || e.session.left {
		t.Error("failed save should not reboot")
	}
}

func TestExit_DiscardsChanges(t *testing.T) {
	e := newEnv(t)
	e.run("set midrc=1600")

	if got := e.run("exit"); got != "Rebooting..." {
		t.Errorf("exit: %q", got)
	}
	if e.cfg.MidRC != 1500 {
		t.Errorf("MidRC after exit = %d, want 1500", e.cfg.MidRC)
	}
	if !e.session.left {
		t.Error("session did not leave")
	}
}

func TestDefaults(t *testing.T) {
	e := newEnv(t)
	e.run("set deadband=10")

	if got := e.run("defaults"); got != "Resetting to defaults...\r\nRebooting..." {
		t.Errorf("defaults: %q", got)
	}
	if e.store.resets != 1 {
		t.Errorf("resets = %d", e.store.resets)
	}
	if e.cfg.Deadband != 0 {
		t.Errorf("Deadband = %d, want 0", e.cfg.Deadband)
	}
}

func TestDeviceCommandsWithoutDevice(t *testing.T) {
	cfg := flight.Defaults()
	var buf bytes.Buffer
	ctx := execctx.New(execctx.NewOutput(&buf)).WithConfig(&cfg, flight.Settings(&cfg))

	for _, h := range []func(*execctx.ExecutionContext, string){Save, Exit, Defaults, Status} {
		buf.Reset()
		h(ctx, "")
		if buf.String() != "ERR: Device unavailable\r\n" {
			t.Errorf("got %q", buf.String())
		}
	}
}
