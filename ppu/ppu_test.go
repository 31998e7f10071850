package ppu

import (
	"testing"

	"github.com/nnarain/nes/ines"
)

type testBus struct {
	chr          [0x2000]uint8
	mirroring    ines.Mirroring
	nmiTriggered bool
	scanlineClks int
}

func (tb *testBus) ReadCHR(addr uint16) uint8     { return tb.chr[addr] }
func (tb *testBus) WriteCHR(addr uint16, v uint8) { tb.chr[addr] = v }
func (tb *testBus) Mirroring() ines.Mirroring     { return tb.mirroring }
func (tb *testBus) TriggerNMI()                   { tb.nmiTriggered = true }
func (tb *testBus) ClockScanline()                { tb.scanlineClks++ }

func TestWriteRegPPUCTRLSetsNametableBitsInT(t *testing.T) {
	p := New(&testBus{})
	p.WriteReg(PPUCTRL, 0b00000011)
	if p.t&0x0C00 != 0x0C00 {
		t.Errorf("t nametable bits = %04x, want both set", p.t&0x0C00)
	}
}

func TestWriteRegPPUSCROLLTwoWrites(t *testing.T) {
	p := New(&testBus{})
	p.WriteReg(PPUSCROLL, 0b01111101) // coarse X=15, fine X=5
	if p.w != 1 {
		t.Fatalf("w = %d after first write, want 1", p.w)
	}
	if p.x != 0b101 {
		t.Errorf("x = %03b, want 101", p.x)
	}
	p.WriteReg(PPUSCROLL, 0b01011110) // coarse Y=11, fine Y=6
	if p.w != 0 {
		t.Fatalf("w = %d after second write, want 0", p.w)
	}
	if (p.t>>5)&0x1F != 11 {
		t.Errorf("coarse Y in t = %d, want 11", (p.t>>5)&0x1F)
	}
	if (p.t>>12)&0x07 != 6 {
		t.Errorf("fine Y in t = %d, want 6", (p.t>>12)&0x07)
	}
}

func TestWriteRegPPUADDRLatchesVOnSecondWrite(t *testing.T) {
	p := New(&testBus{})
	p.WriteReg(PPUADDR, 0x21)
	if p.w != 1 {
		t.Fatalf("w = %d after first write, want 1", p.w)
	}
	p.WriteReg(PPUADDR, 0x08)
	if p.v != 0x2108 {
		t.Errorf("v = %#04x, want 0x2108", p.v)
	}
	if p.w != 0 {
		t.Errorf("w = %d after second write, want 0", p.w)
	}
}

func TestReadRegPPUSTATUSClearsVBlankAndLatch(t *testing.T) {
	p := New(&testBus{})
	p.status = STATUS_VERTICAL_BLANK
	p.w = 1
	got := p.ReadReg(PPUSTATUS)
	if got&STATUS_VERTICAL_BLANK == 0 {
		t.Errorf("PPUSTATUS read = %#02x, expected vblank bit set in the returned value", got)
	}
	if p.status&STATUS_VERTICAL_BLANK != 0 {
		t.Errorf("vblank flag not cleared after PPUSTATUS read")
	}
	if p.w != 0 {
		t.Errorf("write latch not reset after PPUSTATUS read")
	}
}

func TestPPUDATAReadIsBufferedExceptForPalette(t *testing.T) {
	bus := &testBus{}
	p := New(bus)
	p.vram[0] = 0x42 // nametable $2000 under vertical mirroring maps to vram[0]
	bus.mirroring = ines.MirrorVertical
	p.v = 0x2000
	first := p.ReadReg(PPUDATA)
	if first != 0 {
		t.Errorf("first PPUDATA read = %#02x, want 0 (stale buffer)", first)
	}

	p.v = PALETTE_RAM
	p.paletteTable[0] = 0x0F
	direct := p.ReadReg(PPUDATA)
	if direct != 0x0F {
		t.Errorf("palette PPUDATA read = %#02x, want 0x0F (unbuffered)", direct)
	}
}

func TestOAMDMAWritesSequentialBytes(t *testing.T) {
	p := New(&testBus{})
	p.oamAddr = 0xFE
	for i := 0; i < 4; i++ {
		p.WriteOAM(i, uint8(i+1))
	}
	if p.oamData[0xFE] != 1 || p.oamData[0xFF] != 2 || p.oamData[0x00] != 3 || p.oamData[0x01] != 4 {
		t.Errorf("OAM DMA did not wrap correctly from OAMADDR=0xFE")
	}
}

func TestTickSignalsVBlankNMI(t *testing.T) {
	bus := &testBus{}
	p := New(bus)
	p.ctrl = CTRL_GENERATE_NMI
	// Drive the PPU through scanline 241, dot 1: each Tick processes the
	// current dot before advancing, so dot offset 341*242+1 is processed
	// by tick number 341*242+2.
	for i := 0; i < 341*242+2; i++ {
		p.Tick()
	}
	if !bus.nmiTriggered {
		t.Errorf("NMI not triggered entering vblank with CTRL_GENERATE_NMI set")
	}
	if p.status&STATUS_VERTICAL_BLANK == 0 {
		t.Errorf("STATUS_VERTICAL_BLANK not set entering vblank")
	}
}

func TestTickCompletesFrame(t *testing.T) {
	p := New(&testBus{})
	for i := 0; i < 341*262; i++ {
		p.Tick()
	}
	if !p.FrameReady() {
		t.Errorf("FrameReady() = false after one full non-rendering frame of dots")
	}
}

func TestTileMapAddrHorizontalMirroring(t *testing.T) {
	bus := &testBus{mirroring: ines.MirrorHorizontal}
	p := New(bus)
	if got := p.tileMapAddr(0x2000); got != 0 {
		t.Errorf("tileMapAddr(0x2000) = %#04x, want 0", got)
	}
	if got := p.tileMapAddr(0x2400); got != 0 {
		t.Errorf("tileMapAddr(0x2400) = %#04x, want 0 (mirrors nametable 0)", got)
	}
	if got := p.tileMapAddr(0x2800); got != 0x400 {
		t.Errorf("tileMapAddr(0x2800) = %#04x, want 0x400", got)
	}
}
