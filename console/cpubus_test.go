package console

import "testing"

func TestCPUBusInternalRAMMirroring(t *testing.T) {
	rom := buildNROM([]byte{0x4C, 0x00, 0x80})
	sys := New()
	if err := sys.InsertCartridge(rom); err != nil {
		t.Fatalf("InsertCartridge: %v", err)
	}

	sys.cbus.Write(0x0000, 0xAB)
	for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := sys.cbus.Read(mirror); got != 0xAB {
			t.Errorf("RAM mirror at %#04x = %#02x, want 0xAB", mirror, got)
		}
	}
}

func TestCPUBusControllerStrobeSharedAcrossPorts(t *testing.T) {
	rom := buildNROM([]byte{0x4C, 0x00, 0x80})
	sys := New()
	if err := sys.InsertCartridge(rom); err != nil {
		t.Fatalf("InsertCartridge: %v", err)
	}

	sys.ctrl1.SetButton(0, true) // ButtonA = 0
	sys.ctrl2.SetButton(0, true)
	sys.cbus.Write(0x4016, 0x01) // strobe high on both ports
	if got := sys.cbus.Read(0x4016); got != 1 {
		t.Errorf("port 1 read = %d, want 1", got)
	}
	if got := sys.cbus.Read(0x4017); got != 1 {
		t.Errorf("port 2 read = %d, want 1", got)
	}
}

func TestCPUBusOpenBusBetweenAPUAndControllerRegisters(t *testing.T) {
	rom := buildNROM([]byte{0x4C, 0x00, 0x80})
	sys := New()
	if err := sys.InsertCartridge(rom); err != nil {
		t.Fatalf("InsertCartridge: %v", err)
	}
	if got := sys.cbus.Read(0x4018); got != 0 {
		t.Errorf("unmapped $4018 read = %#02x, want 0", got)
	}
}
