package flight

import "strings"

// Feature is a bit position in the feature mask.
type Feature uint8

// Features, in mask bit order.
const (
	FeaturePPM Feature = iota
	FeatureVBat
	FeatureInflightAccCal
	FeatureSpektrum
	FeatureMotorStop
	FeatureServoTilt
	FeatureGyroSmoothing
	FeatureLEDRing
	FeatureGPS
	FeatureFailsafe
	FeatureSonar
	FeatureTelemetry
	FeaturePowerMeter
	FeatureLEDToggle
)

var featureNames = []string{
	"PPM", "VBAT", "INFLIGHT_ACC_CAL", "SPEKTRUM", "MOTOR_STOP",
	"SERVO_TILT", "GYRO_SMOOTHING", "LED_RING", "GPS",
	"FAILSAFE", "SONAR", "TELEMETRY", "POWERMETER", "LED_TOGGLE",
}

// Mask returns the feature's bit in the feature mask.
func (f Feature) Mask() uint32 {
	return 1 << f
}

// String returns the console name of the feature.
func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return "UNKNOWN"
}

// Features returns every feature in mask bit order.
func Features() []Feature {
	out := make([]Feature, len(featureNames))
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// Mixer identifies a mixer geometry.
type Mixer uint8

// Mixers, in the order the firmware numbers them (stored one-based).
const (
	MixerTri Mixer = iota
	MixerQuadP
	MixerQuadX
	MixerBi
	MixerGimbal
	MixerY6
	MixerHex6
	MixerFlyingWing
	MixerY4
	MixerHex6X
	MixerOctoX8
	MixerOctoFlatP
	MixerOctoFlatX
	MixerAirplane
	MixerHeli120CCPM
	MixerHeli90Deg
	MixerVTail4
	MixerCustom
)

var mixerNames = []string{
	"TRI", "QUADP", "QUADX", "BI",
	"GIMBAL", "Y6", "HEX6",
	"FLYING_WING", "Y4", "HEX6X", "OCTOX8", "OCTOFLATP", "OCTOFLATX",
	"AIRPLANE", "HELI_120_CCPM", "HELI_90_DEG", "VTAIL4", "CUSTOM",
}

// String returns the console name of the mixer.
func (m Mixer) String() string {
	if int(m) < len(mixerNames) {
		return mixerNames[m]
	}
	return "UNKNOWN"
}

// Mixers returns every mixer in firmware order.
func Mixers() []Mixer {
	out := make([]Mixer, len(mixerNames))
	for i := range out {
		out[i] = Mixer(i)
	}
	return out
}

// Sensor is a bit position in the detected-sensor mask.
type Sensor uint8

// Sensors, in mask bit order.
const (
	SensorAcc Sensor = iota
	SensorBaro
	SensorMag
	SensorSonar
	SensorGPS
)

var sensorNames = []string{"ACC", "BARO", "MAG", "SONAR", "GPS"}

// Mask returns the sensor's bit in the sensor mask.
func (s Sensor) Mask() uint32 {
	return 1 << s
}

// String returns the console name of the sensor.
func (s Sensor) String() string {
	if int(s) < len(sensorNames) {
		return sensorNames[s]
	}
	return "UNKNOWN"
}

// Sensors returns every sensor in mask bit order.
func Sensors() []Sensor {
	out := make([]Sensor, len(sensorNames))
	for i := range out {
		out[i] = Sensor(i)
	}
	return out
}

// SensorByName returns the sensor with the given name, ignoring case.
func SensorByName(name string) (Sensor, bool) {
	for i, n := range sensorNames {
		if strings.EqualFold(n, name) {
			return Sensor(i), true
		}
	}
	return 0, false
}

var accNames = []string{"", "ADXL345", "MPU6050", "MMA845x"}

// AccName returns the name of the accelerometer hardware index used by
// acc_hardware. Index 0 means auto-detect and has an empty name.
func AccName(hw uint8) string {
	if int(hw) < len(accNames) {
		return accNames[hw]
	}
	return ""
}

// MatchPrefix returns the index of the first name that starts with prefix,
// compared case-insensitively. An empty prefix never matches.
func MatchPrefix(names []string, prefix string) (int, bool) {
	if prefix == "" {
		return 0, false
	}
	for i, n := range names {
		if len(n) >= len(prefix) && strings.EqualFold(n[:len(prefix)], prefix) {
			return i, true
		}
	}
	return 0, false
}

// FeatureByPrefix resolves a typed feature name.
func FeatureByPrefix(prefix string) (Feature, bool) {
	i, ok := MatchPrefix(featureNames, prefix)
	return Feature(i), ok
}

// MixerByPrefix resolves a typed mixer name.
func MixerByPrefix(prefix string) (Mixer, bool) {
	i, ok := MatchPrefix(mixerNames, prefix)
	return Mixer(i), ok
}
