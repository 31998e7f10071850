package apu

// pulseDutyTable holds the four 8-step duty cycles a pulse channel's
// sequencer can select between $4000/$4004 bits 6-7
// (nesdev.org/wiki/APU_Pulse).
var pulseDutyTable = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0}, // 12.5%
	{0, 1, 1, 0, 0, 0, 0, 0}, // 25%
	{0, 1, 1, 1, 1, 0, 0, 0}, // 50%
	{1, 0, 0, 1, 1, 1, 1, 1}, // 25% negated (75%)
}

// pulseUnit is one of the two pulse channels. onesComplement is true
// for pulse 1 (the sweep's target-period subtraction uses one's
// complement there, two's complement on pulse 2).
type pulseUnit struct {
	onesComplement bool

	enabled bool
	duty    uint8
	dutyPos uint8

	timerPeriod uint16
	timer       uint16

	env    envelope
	length lengthCounter

	sweepEnabled bool
	sweepNegate  bool
	sweepShift   uint8
	sweepPeriod  uint8
	sweepDivider uint8
	sweepReload  bool
}

func (p *pulseUnit) writeReg0(v uint8) {
	p.duty = v >> 6
	p.length.halt = v&0x20 != 0
	p.env.loop = p.length.halt
	p.env.constant = v&0x10 != 0
	p.env.volume = v & 0x0F
}

func (p *pulseUnit) writeReg1(v uint8) {
	p.sweepEnabled = v&0x80 != 0
	p.sweepPeriod = (v >> 4) & 0x07
	p.sweepNegate = v&0x08 != 0
	p.sweepShift = v & 0x07
	p.sweepReload = true
}

func (p *pulseUnit) writeReg2(v uint8) {
	p.timerPeriod = (p.timerPeriod & 0xFF00) | uint16(v)
}

func (p *pulseUnit) writeReg3(v uint8) {
	p.timerPeriod = (p.timerPeriod & 0x00FF) | (uint16(v&0x07) << 8)
	if p.enabled {
		p.length.load(v >> 3)
	}
	p.dutyPos = 0
	p.env.start = true
}

func (p *pulseUnit) setEnabled(on bool) {
	p.enabled = on
	if !on {
		p.length.value = 0
	}
}

// targetPeriod computes the sweep unit's proposed period; muting
// conditions (period below $08 or target above $7FF) are checked
// separately so the current, un-swept period keeps playing right up
// until the mute takes effect.
func (p *pulseUnit) targetPeriod() uint16 {
	change := p.timerPeriod >> p.sweepShift
	if !p.sweepNegate {
		return p.timerPeriod + change
	}
	if p.onesComplement {
		return p.timerPeriod - change - 1
	}
	return p.timerPeriod - change
}

func (p *pulseUnit) muted() bool {
	return p.timerPeriod < 8 || p.targetPeriod() > 0x7FF
}

// clockSweep runs once per half frame.
func (p *pulseUnit) clockSweep() {
	if p.sweepDivider == 0 && p.sweepEnabled && p.sweepShift > 0 && !p.muted() {
		p.timerPeriod = p.targetPeriod()
	}
	if p.sweepDivider == 0 || p.sweepReload {
		p.sweepDivider = p.sweepPeriod
		p.sweepReload = false
	} else {
		p.sweepDivider--
	}
}

// clockTimer runs once per APU cycle (every 2 CPU cycles).
func (p *pulseUnit) clockTimer() {
	if p.timer == 0 {
		p.timer = p.timerPeriod
		p.dutyPos = (p.dutyPos + 1) % 8
	} else {
		p.timer--
	}
}

func (p *pulseUnit) sample() uint8 {
	if !p.enabled || p.length.silenced() || p.muted() || pulseDutyTable[p.duty][p.dutyPos] == 0 {
		return 0
	}
	return p.env.output()
}
