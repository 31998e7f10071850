// Package controller implements a standard NES controller: an 8-bit
// shift register latched and clocked through $4016/$4017
// (nesdev.org/wiki/Standard_controller).
package controller

// Button identifies one of the eight buttons in shift-out order.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller holds the latched button state and the shift index the
// next Read will return. The host (cmd/nesplay, a test harness) is
// responsible for translating its own input source into SetButton
// calls; this package has no dependency on any windowing toolkit.
type Controller struct {
	strobe  bool
	buttons uint8
	latched uint8
	idx     uint8
}

// SetButton updates the live (not yet latched) state of one button.
func (c *Controller) SetButton(b Button, pressed bool) {
	mask := uint8(1) << b
	if pressed {
		c.buttons |= mask
	} else {
		c.buttons &^= mask
	}
}

// Write handles a CPU write to $4016 (or $4017 for controller 2):
// bit 0 toggles the strobe. While strobe is high the shift register
// continuously reloads from the live button state; on the high->low
// transition it latches, and Read begins shifting the latched value
// out starting from button A.
func (c *Controller) Write(val uint8) {
	wasStrobe := c.strobe
	c.strobe = val&0x01 != 0
	if c.strobe || wasStrobe {
		c.latched = c.buttons
	}
	if c.strobe {
		c.idx = 0
	}
}

// Read returns the next bit of the latched button state. Past the
// eighth bit the real hardware's open-bus behavior returns 1; callers
// reading beyond 8 shifts see that here too.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return c.buttons & 0x01
	}
	if c.idx >= 8 {
		return 1
	}
	bit := (c.latched >> c.idx) & 0x01
	c.idx++
	return bit
}
