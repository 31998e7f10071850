package apu

// lengthTable is the canonical 32-entry length-counter load table,
// indexed by the top 5 bits of a $4003/$4007/$400B/$400F write
// (nesdev.org/wiki/APU_Length_Counter).
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// lengthCounter is shared by all four tone/noise channels: a halt
// flag gates whether it counts down, and the channel silences once it
// reaches zero.
type lengthCounter struct {
	halt  bool
	value uint8
}

func (l *lengthCounter) load(index uint8) {
	l.value = lengthTable[index]
}

func (l *lengthCounter) clock() {
	if !l.halt && l.value > 0 {
		l.value--
	}
}

func (l *lengthCounter) silenced() bool { return l.value == 0 }
