package apu

// envelope is the divider-then-decay volume generator shared by the
// pulse and noise channels (nesdev.org/wiki/APU_Envelope). A quarter
// frame clock either starts a new envelope (on a $4003/$4007/$400F
// write) or clocks the divider, which on underflow decays the level
// by one, looping back to 15 when the loop flag (shared with the
// length counter's halt flag) is set.
type envelope struct {
	start    bool
	loop     bool
	constant bool
	volume   uint8 // constant volume, or divider reload period

	divider uint8
	decay   uint8
}

func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.volume
		return
	}
	if e.divider > 0 {
		e.divider--
		return
	}
	e.divider = e.volume
	switch {
	case e.decay > 0:
		e.decay--
	case e.loop:
		e.decay = 15
	}
}

func (e *envelope) output() uint8 {
	if e.constant {
		return e.volume
	}
	return e.decay
}
