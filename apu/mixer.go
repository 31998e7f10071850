package apu

// mix implements the NES APU's non-linear mixing formula
// (nesdev.org/wiki/APU_Mixer), clamped to [0, 1]. A zero denominator
// (both pulses silent, or all of triangle/noise/dmc silent) yields
// zero for that term instead of dividing by zero.
func mix(pulse1, pulse2, triangle, noise, dmc uint8) float32 {
	var pulseOut float32
	if pulse1 != 0 || pulse2 != 0 {
		pulseOut = 95.88 / (8128.0/float32(pulse1+pulse2) + 100)
	}

	var tndOut float32
	tnd := float32(triangle)/8227.0 + float32(noise)/12241.0 + float32(dmc)/22638.0
	if tnd != 0 {
		tndOut = 159.79 / (1.0/tnd + 100)
	}

	out := pulseOut + tndOut
	switch {
	case out < 0:
		return 0
	case out > 1:
		return 1
	default:
		return out
	}
}
