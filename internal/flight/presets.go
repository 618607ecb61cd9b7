package flight

// Motor tables loaded by "cmix load" and used when a mixer is selected.
// Each row is throttle, roll, pitch, yaw.
var mixerMotors = map[Mixer][]MotorMix{
	MixerTri: {
		{1.0, 0.0, 1.333333, 0.0},
		{1.0, -1.0, -0.666667, 0.0},
		{1.0, 1.0, -0.666667, 0.0},
	},
	MixerQuadP: {
		{1.0, 0.0, 1.0, -1.0},
		{1.0, -1.0, 0.0, 1.0},
		{1.0, 1.0, 0.0, 1.0},
		{1.0, 0.0, -1.0, -1.0},
	},
	MixerQuadX: {
		{1.0, -1.0, 1.0, -1.0},
		{1.0, -1.0, -1.0, 1.0},
		{1.0, 1.0, 1.0, 1.0},
		{1.0, 1.0, -1.0, -1.0},
	},
	MixerBi: {
		{1.0, 1.0, 0.0, 0.0},
		{1.0, -1.0, 0.0, 0.0},
	},
	MixerY6: {
		{1.0, 0.0, 1.333333, 1.0},
		{1.0, -1.0, -0.666667, -1.0},
		{1.0, 1.0, -0.666667, -1.0},
		{1.0, 0.0, 1.333333, -1.0},
		{1.0, -1.0, -0.666667, 1.0},
		{1.0, 1.0, -0.666667, 1.0},
	},
	MixerHex6: {
		{1.0, -0.866025, 0.5, 1.0},
		{1.0, -0.866025, -0.5, -1.0},
		{1.0, 0.866025, 0.5, 1.0},
		{1.0, 0.866025, -0.5, -1.0},
		{1.0, 0.0, -1.0, 1.0},
		{1.0, 0.0, 1.0, -1.0},
	},
	MixerFlyingWing: {
		{1.0, 0.0, 0.0, 0.0},
	},
	MixerY4: {
		{1.0, 0.0, 1.0, -1.0},
		{1.0, -1.0, -1.0, 0.0},
		{1.0, 0.0, 1.0, 1.0},
		{1.0, 1.0, -1.0, 0.0},
	},
	MixerHex6X: {
		{1.0, -0.5, 0.866025, 1.0},
		{1.0, -0.5, -0.866025, 1.0},
		{1.0, 0.5, 0.866025, -1.0},
		{1.0, 0.5, -0.866025, -1.0},
		{1.0, -1.0, 0.0, -1.0},
		{1.0, 1.0, 0.0, 1.0},
	},
	MixerOctoX8: {
		{1.0, -1.0, 1.0, -1.0},
		{1.0, -1.0, -1.0, 1.0},
		{1.0, 1.0, 1.0, 1.0},
		{1.0, 1.0, -1.0, -1.0},
		{1.0, -1.0, 1.0, 1.0},
		{1.0, -1.0, -1.0, -1.0},
		{1.0, 1.0, 1.0, -1.0},
		{1.0, 1.0, -1.0, 1.0},
	},
	MixerOctoFlatP: {
		{1.0, 0.707107, -0.707107, 1.0},
		{1.0, -0.707107, -0.707107, 1.0},
		{1.0, -0.707107, 0.707107, 1.0},
		{1.0, 0.707107, 0.707107, 1.0},
		{1.0, 0.0, -1.0, -1.0},
		{1.0, -1.0, 0.0, -1.0},
		{1.0, 0.0, 1.0, -1.0},
		{1.0, 1.0, 0.0, -1.0},
	},
	MixerOctoFlatX: {
		{1.0, 1.0, -0.5, 1.0},
		{1.0, -0.5, -1.0, 1.0},
		{1.0, -1.0, 0.5, 1.0},
		{1.0, 0.5, 1.0, 1.0},
		{1.0, 0.5, -1.0, -1.0},
		{1.0, -1.0, -0.5, -1.0},
		{1.0, -0.5, 1.0, -1.0},
		{1.0, 1.0, 0.5, -1.0},
	},
	MixerAirplane: {
		{1.0, 0.0, 0.0, 0.0},
	},
	MixerHeli120CCPM: {
		{1.0, 0.0, 0.0, 0.0},
	},
	MixerHeli90Deg: {
		{1.0, 0.0, 0.0, 0.0},
	},
	MixerVTail4: {
		{1.0, -0.58, 0.58, 1.0},
		{1.0, -0.46, -0.39, 0.0},
		{1.0, 0.58, 0.58, -1.0},
		{1.0, 0.46, -0.39, 0.0},
	},
}

// Motors returns a copy of the preset motor table for m. Gimbal and custom
// mixers have no preset and return nil.
func (m Mixer) Motors() []MotorMix {
	rows := mixerMotors[m]
	if len(rows) == 0 {
		return nil
	}
	out := make([]MotorMix, len(rows))
	copy(out, rows)
	return out
}
