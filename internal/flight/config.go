// Package flight holds the flight controller configuration that the console
// edits, the fixed name tables the console commands work against, and the
// descriptor table that exposes the configuration through the settings
// registry.
package flight

// PID indexes into the P8/I8/D8 gain arrays.
const (
	PIDRoll = iota
	PIDPitch
	PIDYaw
	PIDAlt
	PIDPos
	PIDPosR
	PIDNavR
	PIDLevel
	PIDMag
	PIDVel

	PIDItems
)

// Sensor alignment slots.
const (
	AlignGyro = iota
	AlignAccel
	AlignMag

	AlignItems
)

// Angle trim axes.
const (
	AxisRoll = iota
	AxisPitch
)

// MaxMotors is the number of rows in the custom mixer table.
const MaxMotors = 12

// BaroTabSizeMax bounds baro_tab_size.
const BaroTabSizeMax = 48

// RCChannels is the number of mappable RC input channels.
const RCChannels = 8

// MotorMix is one row of the custom mixer: the weights a motor receives
// from each control axis.
type MotorMix struct {
	Throttle float32 `yaml:"throttle"`
	Roll     float32 `yaml:"roll"`
	Pitch    float32 `yaml:"pitch"`
	Yaw      float32 `yaml:"yaw"`
}

// Config is the complete persisted flight controller configuration.
//
// Settings bound through Settings point directly into a Config, so a Config
// must be replaced in place (*cfg = other) rather than reallocated while a
// registry built from it is in use.
type Config struct {
	MixerConfiguration uint8  `yaml:"mixer"`
	EnabledFeatures    uint32 `yaml:"features"`

	RCMap [RCChannels]uint8 `yaml:"rcmap"`

	Deadband               uint8  `yaml:"deadband"`
	YawDeadband            uint8  `yaml:"yawdeadband"`
	AltHoldThrottleNeutral uint8  `yaml:"alt_hold_throttle_neutral"`
	MidRC                  uint16 `yaml:"midrc"`
	MinThrottle            uint16 `yaml:"minthrottle"`
	MaxThrottle            uint16 `yaml:"maxthrottle"`
	MinCommand             uint16 `yaml:"mincommand"`
	MinCheck               uint16 `yaml:"mincheck"`
	MaxCheck               uint16 `yaml:"maxcheck"`
	RetardedArm            uint8  `yaml:"retarded_arm"`

	FailsafeDelay    uint8  `yaml:"failsafe_delay"`
	FailsafeOffDelay uint8  `yaml:"failsafe_off_delay"`
	FailsafeThrottle uint16 `yaml:"failsafe_throttle"`

	MotorPWMRate   uint16 `yaml:"motor_pwm_rate"`
	ServoPWMRate   uint16 `yaml:"servo_pwm_rate"`
	SerialBaudrate uint32 `yaml:"serial_baudrate"`
	GPSBaudrate    uint32 `yaml:"gps_baudrate"`
	SpektrumHires  uint8  `yaml:"spektrum_hires"`

	VBatScale          uint8 `yaml:"vbatscale"`
	VBatMaxCellVoltage uint8 `yaml:"vbatmaxcellvoltage"`
	VBatMinCellVoltage uint8 `yaml:"vbatmincellvoltage"`
	PowerADCChannel    uint8 `yaml:"power_adc_channel"`

	YawDirection    int8   `yaml:"yaw_direction"`
	TriYawMiddle    uint16 `yaml:"tri_yaw_middle"`
	TriYawMin       uint16 `yaml:"tri_yaw_min"`
	TriYawMax       uint16 `yaml:"tri_yaw_max"`
	WingLeftMin     uint16 `yaml:"wing_left_min"`
	WingLeftMid     uint16 `yaml:"wing_left_mid"`
	WingLeftMax     uint16 `yaml:"wing_left_max"`
	WingRightMin    uint16 `yaml:"wing_right_min"`
	WingRightMid    uint16 `yaml:"wing_right_mid"`
	WingRightMax    uint16 `yaml:"wing_right_max"`
	PitchDirectionL int8   `yaml:"pitch_direction_l"`
	PitchDirectionR int8   `yaml:"pitch_direction_r"`
	RollDirectionL  int8   `yaml:"roll_direction_l"`
	RollDirectionR  int8   `yaml:"roll_direction_r"`

	GimbalFlags     uint8  `yaml:"gimbal_flags"`
	GimbalPitchGain int8   `yaml:"gimbal_pitch_gain"`
	GimbalRollGain  int8   `yaml:"gimbal_roll_gain"`
	GimbalPitchMin  uint16 `yaml:"gimbal_pitch_min"`
	GimbalPitchMax  uint16 `yaml:"gimbal_pitch_max"`
	GimbalPitchMid  uint16 `yaml:"gimbal_pitch_mid"`
	GimbalRollMin   uint16 `yaml:"gimbal_roll_min"`
	GimbalRollMax   uint16 `yaml:"gimbal_roll_max"`
	GimbalRollMid   uint16 `yaml:"gimbal_roll_mid"`

	Align [AlignItems][3]int8 `yaml:"align"`

	AccHardware       uint8    `yaml:"acc_hardware"`
	AccLPFFactor      uint8    `yaml:"acc_lpf_factor"`
	AccLPFForVelocity uint8    `yaml:"acc_lpf_for_velocity"`
	AngleTrim         [2]int16 `yaml:"angle_trim"`
	GyroLPF           uint16   `yaml:"gyro_lpf"`
	GyroCMPFFactor    uint16   `yaml:"gyro_cmpf_factor"`
	MPU6050Scale      uint8    `yaml:"mpu6050_scale"`

	BaroTabSize    uint8   `yaml:"baro_tab_size"`
	BaroNoiseLPF   float32 `yaml:"baro_noise_lpf"`
	BaroCF         float32 `yaml:"baro_cf"`
	MoronThreshold uint8   `yaml:"moron_threshold"`
	SonarPinout    uint8   `yaml:"sonar_pinout"`
	MagDeclination int16   `yaml:"mag_declination"`

	GPSType            uint8  `yaml:"gps_type"`
	GPSWPRadius        uint16 `yaml:"gps_wp_radius"`
	NavControlsHeading uint8  `yaml:"nav_controls_heading"`
	NavSpeedMin        uint16 `yaml:"nav_speed_min"`
	NavSpeedMax        uint16 `yaml:"nav_speed_max"`
	NavSlewRate        uint8  `yaml:"nav_slew_rate"`

	Looptime uint16 `yaml:"looptime"`

	P8 [PIDItems]uint8 `yaml:"p"`
	I8 [PIDItems]uint8 `yaml:"i"`
	D8 [PIDItems]uint8 `yaml:"d"`

	LEDTogglePattern uint32 `yaml:"ledtoggle_pattern"`

	CustomMixer [MaxMotors]MotorMix `yaml:"custom_mixer"`
}

// Defaults returns the factory configuration.
func Defaults() Config {
	c := Config{
		MixerConfiguration: uint8(MixerQuadX) + 1,
		EnabledFeatures:    FeatureVBat.Mask(),

		AltHoldThrottleNeutral: 20,
		MidRC:                  1500,
		MinThrottle:            1150,
		MaxThrottle:            1850,
		MinCommand:             1000,
		MinCheck:               1100,
		MaxCheck:               1900,

		FailsafeDelay:    10,
		FailsafeOffDelay: 200,
		FailsafeThrottle: 1200,

		MotorPWMRate:   400,
		ServoPWMRate:   50,
		SerialBaudrate: 115200,
		GPSBaudrate:    115200,

		VBatScale:          110,
		VBatMaxCellVoltage: 43,
		VBatMinCellVoltage: 33,

		YawDirection:    1,
		TriYawMiddle:    1500,
		TriYawMin:       1020,
		TriYawMax:       2000,
		WingLeftMin:     1020,
		WingLeftMid:     1500,
		WingLeftMax:     2000,
		WingRightMin:    1020,
		WingRightMid:    1500,
		WingRightMax:    2000,
		PitchDirectionL: 1,
		PitchDirectionR: -1,
		RollDirectionL:  1,
		RollDirectionR:  1,

		GimbalFlags:     1,
		GimbalPitchGain: 10,
		GimbalRollGain:  10,
		GimbalPitchMin:  1020,
		GimbalPitchMax:  2000,
		GimbalPitchMid:  1500,
		GimbalRollMin:   1020,
		GimbalRollMax:   2000,
		GimbalRollMid:   1500,

		AccLPFFactor:      4,
		AccLPFForVelocity: 10,
		GyroLPF:           42,
		GyroCMPFFactor:    400,
		MPU6050Scale:      1,

		BaroTabSize:    21,
		BaroNoiseLPF:   0.6,
		BaroCF:         0.985,
		MoronThreshold: 32,

		GPSWPRadius:        200,
		NavControlsHeading: 1,
		NavSpeedMin:        100,
		NavSpeedMax:        300,
		NavSlewRate:        30,

		Looptime: 3000,
	}

	c.P8 = [PIDItems]uint8{40, 40, 85, 50, 11, 20, 14, 90, 40, 120}
	c.I8 = [PIDItems]uint8{30, 30, 45, 25, 0, 8, 20, 10, 0, 45}
	c.D8 = [PIDItems]uint8{23, 23, 0, 80, 0, 45, 80, 100, 0, 1}

	c.RCMap = DefaultRCMap()
	return c
}

// FeatureEnabled reports whether f is set in the feature mask.
func (c *Config) FeatureEnabled(f Feature) bool {
	return c.EnabledFeatures&f.Mask() != 0
}

// SetFeature sets f in the feature mask.
func (c *Config) SetFeature(f Feature) {
	c.EnabledFeatures |= f.Mask()
}

// ClearFeature clears f from the feature mask.
func (c *Config) ClearFeature(f Feature) {
	c.EnabledFeatures &^= f.Mask()
}

// Mixer returns the configured mixer. The stored value is one-based.
func (c *Config) Mixer() Mixer {
	if c.MixerConfiguration == 0 || int(c.MixerConfiguration) > len(mixerNames) {
		return MixerQuadX
	}
	return Mixer(c.MixerConfiguration - 1)
}

// SetMixer selects m as the active mixer.
func (c *Config) SetMixer(m Mixer) {
	c.MixerConfiguration = uint8(m) + 1
}

// ActiveMotors returns the leading rows of the custom mixer up to the first
// row whose throttle is exactly zero.
func (c *Config) ActiveMotors() []MotorMix {
	for i, m := range c.CustomMixer {
		if m.Throttle == 0 {
			return c.CustomMixer[:i]
		}
	}
	return c.CustomMixer[:]
}

// LoadMix replaces the whole custom mixer table with the preset motor
// table of m. Unused rows are zeroed.
func (c *Config) LoadMix(m Mixer) {
	c.CustomMixer = [MaxMotors]MotorMix{}
	copy(c.CustomMixer[:], m.Motors())
}
