package flight

import "github.com/dshills/fcconsole/internal/settings"

// Settings returns the registry of every named configuration value, bound
// to the fields of c. The order is the order "set" lists them in.
func Settings(c *Config) *settings.Registry {
	return settings.MustNew(
		settings.Bind("deadband", &c.Deadband, 0, 32),
		settings.Bind("yawdeadband", &c.YawDeadband, 0, 100),
		settings.Bind("alt_hold_throttle_neutral", &c.AltHoldThrottleNeutral, 1, 250),
		settings.Bind("midrc", &c.MidRC, 1200, 1700),
		settings.Bind("minthrottle", &c.MinThrottle, 0, 2000),
		settings.Bind("maxthrottle", &c.MaxThrottle, 0, 2000),
		settings.Bind("mincommand", &c.MinCommand, 0, 2000),
		settings.Bind("mincheck", &c.MinCheck, 0, 2000),
		settings.Bind("maxcheck", &c.MaxCheck, 0, 2000),
		settings.Bind("retarded_arm", &c.RetardedArm, 0, 1),
		settings.Bind("failsafe_delay", &c.FailsafeDelay, 0, 200),
		settings.Bind("failsafe_off_delay", &c.FailsafeOffDelay, 0, 200),
		settings.Bind("failsafe_throttle", &c.FailsafeThrottle, 1000, 2000),
		settings.Bind("motor_pwm_rate", &c.MotorPWMRate, 50, 498),
		settings.Bind("servo_pwm_rate", &c.ServoPWMRate, 50, 498),
		settings.Bind("serial_baudrate", &c.SerialBaudrate, 1200, 115200),
		settings.Bind("gps_baudrate", &c.GPSBaudrate, 1200, 115200),
		settings.Bind("spektrum_hires", &c.SpektrumHires, 0, 1),
		settings.Bind("vbatscale", &c.VBatScale, 10, 200),
		settings.Bind("vbatmaxcellvoltage", &c.VBatMaxCellVoltage, 10, 50),
		settings.Bind("vbatmincellvoltage", &c.VBatMinCellVoltage, 10, 50),
		settings.Bind("power_adc_channel", &c.PowerADCChannel, 0, 9),
		settings.Bind("yaw_direction", &c.YawDirection, -1, 1),
		settings.Bind("tri_yaw_middle", &c.TriYawMiddle, 0, 2000),
		settings.Bind("tri_yaw_min", &c.TriYawMin, 0, 2000),
		settings.Bind("tri_yaw_max", &c.TriYawMax, 0, 2000),
		settings.Bind("wing_left_min", &c.WingLeftMin, 0, 2000),
		settings.Bind("wing_left_mid", &c.WingLeftMid, 0, 2000),
		settings.Bind("wing_left_max", &c.WingLeftMax, 0, 2000),
		settings.Bind("wing_right_min", &c.WingRightMin, 0, 2000),
		settings.Bind("wing_right_mid", &c.WingRightMid, 0, 2000),
		settings.Bind("wing_right_max", &c.WingRightMax, 0, 2000),
		settings.Bind("pitch_direction_l", &c.PitchDirectionL, -1, 1),
		settings.Bind("pitch_direction_r", &c.PitchDirectionR, -1, 1),
		settings.Bind("roll_direction_l", &c.RollDirectionL, -1, 1),
		settings.Bind("roll_direction_r", &c.RollDirectionR, -1, 1),
		settings.Bind("gimbal_flags", &c.GimbalFlags, 0, 255),
		settings.Bind("gimbal_pitch_gain", &c.GimbalPitchGain, -100, 100),
		settings.Bind("gimbal_roll_gain", &c.GimbalRollGain, -100, 100),
		settings.Bind("gimbal_pitch_min", &c.GimbalPitchMin, 100, 3000),
		settings.Bind("gimbal_pitch_max", &c.GimbalPitchMax, 100, 3000),
		settings.Bind("gimbal_pitch_mid", &c.GimbalPitchMid, 100, 3000),
		settings.Bind("gimbal_roll_min", &c.GimbalRollMin, 100, 3000),
		settings.Bind("gimbal_roll_max", &c.GimbalRollMax, 100, 3000),
		settings.Bind("gimbal_roll_mid", &c.GimbalRollMid, 100, 3000),
		settings.Bind("align_gyro_x", &c.Align[AlignGyro][0], -3, 3),
		settings.Bind("align_gyro_y", &c.Align[AlignGyro][1], -3, 3),
		settings.Bind("align_gyro_z", &c.Align[AlignGyro][2], -3, 3),
		settings.Bind("align_acc_x", &c.Align[AlignAccel][0], -3, 3),
		settings.Bind("align_acc_y", &c.Align[AlignAccel][1], -3, 3),
		settings.Bind("align_acc_z", &c.Align[AlignAccel][2], -3, 3),
		settings.Bind("align_mag_x", &c.Align[AlignMag][0], -3, 3),
		settings.Bind("align_mag_y", &c.Align[AlignMag][1], -3, 3),
		settings.Bind("align_mag_z", &c.Align[AlignMag][2], -3, 3),
		settings.Bind("acc_hardware", &c.AccHardware, 0, 3),
		settings.Bind("acc_lpf_factor", &c.AccLPFFactor, 0, 250),
		settings.Bind("acc_lpf_for_velocity", &c.AccLPFForVelocity, 1, 250),
		settings.Bind("acc_trim_pitch", &c.AngleTrim[AxisPitch], -300, 300),
		settings.Bind("acc_trim_roll", &c.AngleTrim[AxisRoll], -300, 300),
		settings.Bind("gyro_lpf", &c.GyroLPF, 0, 256),
		settings.Bind("gyro_cmpf_factor", &c.GyroCMPFFactor, 100, 1000),
		settings.Bind("mpu6050_scale", &c.MPU6050Scale, 0, 1),
		settings.Bind("baro_tab_size", &c.BaroTabSize, 0, BaroTabSizeMax),
		settings.Bind("baro_noise_lpf", &c.BaroNoiseLPF, 0, 1),
		settings.Bind("baro_cf", &c.BaroCF, 0, 1),
		settings.Bind("moron_threshold", &c.MoronThreshold, 0, 128),
		settings.Bind("sonar_pinout", &c.SonarPinout, 0, 2),
		settings.Bind("mag_declination", &c.MagDeclination, -18000, 18000),
		settings.Bind("gps_type", &c.GPSType, 0, 3),
		settings.Bind("gps_pos_p", &c.P8[PIDPos], 0, 200),
		settings.Bind("gps_pos_i", &c.I8[PIDPos], 0, 200),
		settings.Bind("gps_pos_d", &c.D8[PIDPos], 0, 200),
		settings.Bind("gps_posr_p", &c.P8[PIDPosR], 0, 200),
		settings.Bind("gps_posr_i", &c.I8[PIDPosR], 0, 200),
		settings.Bind("gps_posr_d", &c.D8[PIDPosR], 0, 200),
		settings.Bind("gps_nav_p", &c.P8[PIDNavR], 0, 200),
		settings.Bind("gps_nav_i", &c.I8[PIDNavR], 0, 200),
		settings.Bind("gps_nav_d", &c.D8[PIDNavR], 0, 200),
		settings.Bind("gps_wp_radius", &c.GPSWPRadius, 0, 2000),
		settings.Bind("nav_controls_heading", &c.NavControlsHeading, 0, 1),
		settings.Bind("nav_speed_min", &c.NavSpeedMin, 10, 2000),
		settings.Bind("nav_speed_max", &c.NavSpeedMax, 10, 2000),
		settings.Bind("nav_slew_rate", &c.NavSlewRate, 0, 100),
		settings.Bind("looptime", &c.Looptime, 0, 9000),
		settings.Bind("p_pitch", &c.P8[PIDPitch], 0, 200),
		settings.Bind("i_pitch", &c.I8[PIDPitch], 0, 200),
		settings.Bind("d_pitch", &c.D8[PIDPitch], 0, 200),
		settings.Bind("p_roll", &c.P8[PIDRoll], 0, 200),
		settings.Bind("i_roll", &c.I8[PIDRoll], 0, 200),
		settings.Bind("d_roll", &c.D8[PIDRoll], 0, 200),
		settings.Bind("p_yaw", &c.P8[PIDYaw], 0, 200),
		settings.Bind("i_yaw", &c.I8[PIDYaw], 0, 200),
		settings.Bind("d_yaw", &c.D8[PIDYaw], 0, 200),
		settings.Bind("p_alt", &c.P8[PIDAlt], 0, 200),
		settings.Bind("i_alt", &c.I8[PIDAlt], 0, 200),
		settings.Bind("d_alt", &c.D8[PIDAlt], 0, 200),
		settings.Bind("p_level", &c.P8[PIDLevel], 0, 200),
		settings.Bind("i_level", &c.I8[PIDLevel], 0, 200),
		settings.Bind("d_level", &c.D8[PIDLevel], 0, 200),
		settings.Bind("ledPattern", &c.LEDTogglePattern, 0, 0),
	)
}
