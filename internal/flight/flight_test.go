package flight

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := Defaults()

	if c.Mixer() != MixerQuadX {
		t.Errorf("Mixer() = %v, want QUADX", c.Mixer())
	}
	if !c.FeatureEnabled(FeatureVBat) {
		t.Error("VBAT should be enabled by default")
	}
	if c.MidRC != 1500 {
		t.Errorf("MidRC = %d, want 1500", c.MidRC)
	}
	if got := RCMapString(c.RCMap); got != RCChannelLetters {
		t.Errorf("RCMapString = %q, want %q", got, RCChannelLetters)
	}
}

func TestFeatureMask(t *testing.T) {
	var c Config
	c.SetFeature(FeatureGPS)
	c.SetFeature(FeaturePPM)
	if c.EnabledFeatures != FeatureGPS.Mask()|FeaturePPM.Mask() {
		t.Errorf("EnabledFeatures = %#x", c.EnabledFeatures)
	}
	c.ClearFeature(FeatureGPS)
	if c.FeatureEnabled(FeatureGPS) {
		t.Error("GPS still enabled after ClearFeature")
	}
	if !c.FeatureEnabled(FeaturePPM) {
		t.Error("PPM cleared unexpectedly")
	}
}

func TestFeatureByPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   Feature
		ok     bool
	}{
		{"GPS", FeatureGPS, true},
		{"gps", FeatureGPS, true},
		{"MOTOR", FeatureMotorStop, true},
		{"LED", FeatureLEDRing, true},
		{"LED_T", FeatureLEDToggle, true},
		{"", 0, false},
		{"NOPE", 0, false},
	}

	for _, tt := range tests {
		got, ok := FeatureByPrefix(tt.prefix)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("FeatureByPrefix(%q) = %v, %v; want %v, %v", tt.prefix, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMixerByPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   Mixer
		ok     bool
	}{
		{"QUADX", MixerQuadX, true},
		{"quadx", MixerQuadX, true},
		{"QUAD", MixerQuadP, true},
		{"HEX6X", MixerHex6X, true},
		{"CUSTOM", MixerCustom, true},
		{"QUADZ", 0, false},
	}

	for _, tt := range tests {
		got, ok := MixerByPrefix(tt.prefix)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("MixerByPrefix(%q) = %v, %v; want %v, %v", tt.prefix, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfig_MixerOneBased(t *testing.T) {
	var c Config
	c.SetMixer(MixerTri)
	if c.MixerConfiguration != 1 {
		t.Errorf("MixerConfiguration = %d, want 1", c.MixerConfiguration)
	}
	if c.Mixer() != MixerTri {
		t.Errorf("Mixer() = %v, want TRI", c.Mixer())
	}
}

func TestMixerPresetsBalanced(t *testing.T) {
	for _, m := range Mixers() {
		rows := m.Motors()
		if len(rows) < 2 {
			continue
		}
		var roll, pitch, yaw float64
		for _, r := range rows {
			roll += float64(r.Roll)
			pitch += float64(r.Pitch)
			yaw += float64(r.Yaw)
		}
		// V-tail rear motors carry less pitch authority than the front pair.
		if m == MixerVTail4 {
			pitch = 0
		}
		if math.Abs(roll) > 0.01 || math.Abs(pitch) > 0.01 || math.Abs(yaw) > 0.01 {
			t.Errorf("%v: sums roll=%f pitch=%f yaw=%f", m, roll, pitch, yaw)
		}
	}
}

func TestMixerMotorsIsCopy(t *testing.T) {
	rows := MixerQuadX.Motors()
	rows[0].Throttle = 0
	if MixerQuadX.Motors()[0].Throttle != 1 {
		t.Error("Motors() exposed the preset table")
	}
	if MixerGimbal.Motors() != nil {
		t.Error("GIMBAL should have no preset")
	}
}

func TestConfig_LoadMix(t *testing.T) {
	var c Config
	for i := range c.CustomMixer {
		c.CustomMixer[i] = MotorMix{Throttle: 1, Roll: 5}
	}

	c.LoadMix(MixerQuadX)

	active := c.ActiveMotors()
	if len(active) != 4 {
		t.Fatalf("ActiveMotors() len = %d, want 4", len(active))
	}
	if active[0] != (MotorMix{1, -1, 1, -1}) {
		t.Errorf("row 1 = %+v", active[0])
	}
	for i := 4; i < MaxMotors; i++ {
		if c.CustomMixer[i] != (MotorMix{}) {
			t.Errorf("row %d not cleared: %+v", i+1, c.CustomMixer[i])
		}
	}
}

func TestConfig_ActiveMotorsStopsAtZeroThrottle(t *testing.T) {
	var c Config
	c.CustomMixer[0] = MotorMix{Throttle: 1}
	c.CustomMixer[1] = MotorMix{Throttle: 0, Roll: 1}
	c.CustomMixer[2] = MotorMix{Throttle: 1}

	if got := len(c.ActiveMotors()); got != 1 {
		t.Errorf("ActiveMotors() len = %d, want 1", got)
	}
}

func TestParseRCMap(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"AETR1234", "AETR1234", false},
		{"taer1234", "TAER1234", false},
		{"TAER4321", "TAER4321", false},
		{"AETR123", "", true},
		{"AETR1235", "", true},
		{"AATR1234", "", true},
		{"AETR12345", "", true},
	}

	for _, tt := range tests {
		m, err := ParseRCMap(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRCMap) {
				t.Errorf("ParseRCMap(%q) error = %v, want ErrInvalidRCMap", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRCMap(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got := RCMapString(m); got != tt.want {
			t.Errorf("RCMapString(ParseRCMap(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRCMap_Positions(t *testing.T) {
	m, err := ParseRCMap("TAER1234")
	if err != nil {
		t.Fatal(err)
	}
	// Throttle sits in the first input position.
	if m[2] != 0 {
		t.Errorf("rcmap[T] = %d, want 0", m[2])
	}
	if m[0] != 1 {
		t.Errorf("rcmap[A] = %d, want 1", m[0])
	}
}

func TestSettingsTable(t *testing.T) {
	c := Defaults()
	reg := Settings(&c)

	if reg.Len() != 100 {
		t.Errorf("Len() = %d, want 100", reg.Len())
	}

	all := reg.All()
	if all[0].Name != "deadband" || all[len(all)-1].Name != "ledPattern" {
		t.Errorf("unexpected ordering: first %s last %s", all[0].Name, all[len(all)-1].Name)
	}

	s := reg.Find("midrc")
	if s == nil {
		t.Fatal("midrc not found")
	}
	if err := s.Set("1600"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if c.MidRC != 1600 {
		t.Errorf("MidRC = %d, want 1600", c.MidRC)
	}

	if err := reg.Find("p_pitch").Set("55"); err != nil {
		t.Fatal(err)
	}
	if c.P8[PIDPitch] != 55 {
		t.Errorf("P8[pitch] = %d, want 55", c.P8[PIDPitch])
	}

	if err := reg.Find("align_mag_z").Set("-2"); err != nil {
		t.Fatal(err)
	}
	if c.Align[AlignMag][2] != -2 {
		t.Errorf("Align[mag][z] = %d, want -2", c.Align[AlignMag][2])
	}

	if err := reg.Find("baro_tab_size").Set("49"); err == nil {
		t.Error("baro_tab_size accepted a value above the maximum")
	}
}

func TestSettingsTable_ReplaceInPlace(t *testing.T) {
	c := Defaults()
	reg := Settings(&c)

	other := Defaults()
	other.Deadband = 7
	c = other

	if got := reg.Find("deadband").String(); got != "7" {
		t.Errorf("deadband = %s, want 7", got)
	}
}

func TestNamesStable(t *testing.T) {
	if got := strings.Join(mixerNames, " "); !strings.HasPrefix(got, "TRI QUADP QUADX BI") {
		t.Errorf("mixer order changed: %s", got)
	}
	if MixerCustom.String() != "CUSTOM" || Mixer(200).String() != "UNKNOWN" {
		t.Error("unexpected mixer names")
	}
	if AccName(2) != "MPU6050" || AccName(9) != "" {
		t.Error("unexpected accelerometer names")
	}
	if s, ok := SensorByName("baro"); !ok || s != SensorBaro {
		t.Error("SensorByName(baro) failed")
	}
}
