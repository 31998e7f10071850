package controller

import "testing"

func TestStrobeHighAlwaysReadsA(t *testing.T) {
	var c Controller
	c.SetButton(ButtonA, true)
	c.Write(1)
	if got := c.Read(); got != 1 {
		t.Errorf("Read() during strobe = %d, want 1 (button A held)", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("second Read() during strobe = %d, want 1 (strobe keeps reloading)", got)
	}
}

func TestShiftOutLatchedOrder(t *testing.T) {
	var c Controller
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonStart, true)
	c.Write(1)
	c.Write(0) // latch

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("Read() bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	var c Controller
	c.Write(1)
	c.Write(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("Read() past 8th shift = %d, want 1", got)
		}
	}
}

func TestSetButtonClearsOnRelease(t *testing.T) {
	var c Controller
	c.SetButton(ButtonB, true)
	c.SetButton(ButtonB, false)
	c.Write(1)
	c.Write(0)
	c.Read() // bit 0: A
	if got := c.Read(); got != 0 {
		t.Errorf("Read() bit 1 (B) = %d, want 0 after release", got)
	}
}
